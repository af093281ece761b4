// Package bench provides benchmark objective functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization along with a
// harness for running the swarm against them.
package bench

import (
	"fmt"
	"math"

	"github.com/quebin31/pso/swarm"
)

var (
	sin  = math.Sin
	abs  = math.Abs
	sqrt = math.Sqrt
)

// Optimum is a known global optimum of a benchmark function.
type Optimum struct {
	Pos []float64
	Val float64
}

type Func interface {
	Eval(v []float64) float64
	Bounds() (low, up []float64)
	Optimum() Optimum
	Name() string
}

var AllFuncs = []Func{
	Sphere{NDim: 2},
	Sphere{NDim: 10},
	Booth{},
	Ackley{},
	Eggholder{},
	Rosenbrock{NDim: 2},
	Rosenbrock{NDim: 10},
}

type Sphere struct {
	NDim int
}

func (fn Sphere) Name() string { return fmt.Sprintf("Sphere_%vD", fn.NDim) }

func (fn Sphere) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for _, x := range v {
		tot += x * x
	}
	return tot
}

func (fn Sphere) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -100
		up[i] = 100
	}
	return low, up
}

func (fn Sphere) Optimum() Optimum {
	return Optimum{Pos: make([]float64, fn.NDim), Val: 0}
}

type Booth struct{}

func (fn Booth) Name() string { return "Booth" }

func (fn Booth) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return math.Pow(x+2*y-7, 2) + math.Pow(2*x+y-5, 2)
}

func (fn Booth) Bounds() (low, up []float64) {
	return []float64{-10, -10}, []float64{10, 10}
}

func (fn Booth) Optimum() Optimum {
	return Optimum{Pos: []float64{1, 3}, Val: 0}
}

type Ackley struct{}

func (fn Ackley) Name() string { return "Ackley" }

func (fn Ackley) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -20*math.Exp(-0.2*sqrt(0.5*(x*x+y*y))) -
		math.Exp(0.5*(math.Cos(2*math.Pi*x)+math.Cos(2*math.Pi*y))) +
		20 + math.E
}

func (fn Ackley) Bounds() (low, up []float64) {
	return []float64{-5, -5}, []float64{5, 5}
}

func (fn Ackley) Optimum() Optimum {
	return Optimum{Pos: []float64{0, 0}, Val: 0}
}

type Eggholder struct{}

func (fn Eggholder) Name() string { return "Eggholder" }

func (fn Eggholder) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -(y+47)*sin(sqrt(abs(y+x/2+47))) - x*sin(sqrt(abs(x-(y+47))))
}

func (fn Eggholder) Bounds() (low, up []float64) {
	return []float64{-512, -512}, []float64{512, 512}
}

func (fn Eggholder) Optimum() Optimum {
	return Optimum{Pos: []float64{512, 404.2319}, Val: -959.6407}
}

type Rosenbrock struct {
	NDim int
}

func (fn Rosenbrock) Name() string { return fmt.Sprintf("Rosenbrock_%vD", fn.NDim) }

func (fn Rosenbrock) Eval(x []float64) float64 {
	if !InsideBounds(x, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for i := 0; i < fn.NDim-1; i++ {
		tot += 100*math.Pow(x[i+1]-x[i]*x[i], 2) + math.Pow(x[i]-1, 2)
	}
	return tot
}

func (fn Rosenbrock) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -30
		up[i] = 30
	}
	return low, up
}

func (fn Rosenbrock) Optimum() Optimum {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = 1
	}
	return Optimum{Pos: pos, Val: 0}
}

// InsideBounds reports whether p lies inside fn's box bounds.
func InsideBounds(p []float64, fn Func) bool {
	low, up := fn.Bounds()
	for i := range p {
		if p[i] < low[i] || p[i] > up[i] {
			return false
		}
	}
	return true
}

// Benchmark steps s until its best value is within tol of fn's known optimum
// (with an absolute floor of 0.001) or maxiter iterations have run.  It
// reports the iteration count and whether the tolerance was reached.
func Benchmark(s *swarm.Swarm, fn Func, opt swarm.Options, tol float64, maxiter int) (niter int, converged bool, err error) {
	optimum := fn.Optimum().Val
	thresh := tol * abs(optimum)
	if thresh < 0.001 {
		thresh = 0.001
	}

	for niter = 0; niter < maxiter; niter++ {
		if err := s.Step(opt); err != nil {
			return niter, false, err
		}
		if abs(s.BestVal()-optimum) < thresh {
			return niter + 1, true, nil
		}
	}
	return niter, false, nil
}
