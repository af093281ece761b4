// Package pop generates initial particle populations by sampling
// caller-supplied distributions.
package pop

import (
	"fmt"

	"github.com/petar/GoLLRB/llrb"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quebin31/pso"
)

// New draws n vectors of ndim components with every component sampled
// independently from dist.
func New(n, ndim int, dist distuv.Rander) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		points[i] = vector(ndim, dist)
	}
	return points
}

// NewUniform draws n vectors uniformly distributed in the box bounds
// described by low and up.  pso.Rand is used for random numbers.
func NewUniform(n int, low, up []float64) [][]float64 {
	if len(low) != len(up) {
		panic("pop: low and up vectors are not same length")
	}

	dists := make([]distuv.Uniform, len(low))
	for j := range dists {
		dists[j] = distuv.Uniform{Min: low[j], Max: up[j], Src: pso.Rand}
	}

	points := make([][]float64, n)
	for i := range points {
		pos := make([]float64, len(low))
		for j := range pos {
			pos[j] = dists[j].Rand()
		}
		points[i] = pos
	}
	return points
}

type candidate struct {
	pos []float64
	val float64
}

func (c candidate) Less(than llrb.Item) bool {
	return c.val < than.(candidate).val
}

// NewBest draws m candidate vectors from dist and returns the n fittest of
// them under obj's maximize view, best first.  The tree only ever holds the n
// best candidates seen so far, so memory stays proportional to n rather than
// m.  Evaluation errors abort the draw.
func NewBest(n, m, ndim int, dist distuv.Rander, obj pso.Objective) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("pop: population size must be at least 1, got %v", n)
	} else if m < n {
		return nil, fmt.Errorf("pop: candidate count %v is smaller than population size %v", m, n)
	}

	keep := llrb.New()
	for i := 0; i < m; i++ {
		pos := vector(ndim, dist)
		val, err := obj.Max(pos)
		if err != nil {
			return nil, err
		}
		keep.InsertNoReplace(candidate{pos: pos, val: val})
		for keep.Len() > n {
			keep.DeleteMin()
		}
	}

	points := make([][]float64, 0, n)
	for keep.Len() > 0 {
		points = append(points, keep.DeleteMax().(candidate).pos)
	}
	return points, nil
}

func vector(ndim int, dist distuv.Rander) []float64 {
	v := make([]float64, ndim)
	for j := range v {
		v[j] = dist.Rand()
	}
	return v
}
