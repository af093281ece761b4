package bench

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/quebin31/pso"
	"github.com/quebin31/pso/pop"
	"github.com/quebin31/pso/swarm"
)

const (
	maxiter = 2000
	tol     = 0.01
	seed    = 7
)

func TestOptima(t *testing.T) {
	for _, fn := range AllFuncs {
		opt := fn.Optimum()
		got := fn.Eval(opt.Pos)
		if math.Abs(got-opt.Val) > 0.01 {
			t.Errorf("[ERROR:%v] Eval(optimum) = %v, want %v", fn.Name(), got, opt.Val)
		}
	}
}

func TestInsideBounds(t *testing.T) {
	fn := Booth{}
	if !InsideBounds([]float64{0, 0}, fn) {
		t.Errorf("[ERROR] origin reported outside Booth bounds")
	}
	if InsideBounds([]float64{11, 0}, fn) {
		t.Errorf("[ERROR] out-of-range point reported inside Booth bounds")
	}
	if !math.IsInf(fn.Eval([]float64{11, 0}), 1) {
		t.Errorf("[ERROR] out-of-bounds eval did not return +Inf")
	}
}

func TestSwarmBench(t *testing.T) {
	for _, fn := range AllFuncs {
		pso.Rand = rand.New(rand.NewSource(seed))

		s, err := buildSwarm(fn, 30)
		if err != nil {
			t.Fatalf("[ERROR:%v] %v", fn.Name(), err)
		}

		niter, converged, err := Benchmark(s, fn, swarm.DefaultOptions(), tol, maxiter)
		if err != nil {
			t.Errorf("[ERROR:%v] %v", fn.Name(), err)
		} else if converged {
			t.Logf("[pass:%v] %v iters: optimum is %v, got %v", fn.Name(), niter, fn.Optimum().Val, s.BestVal())
		} else {
			t.Logf("[fail:%v] %v iters: optimum is %v, got %v", fn.Name(), niter, fn.Optimum().Val, s.BestVal())
		}
	}
}

func buildSwarm(fn Func, n int) (*swarm.Swarm, error) {
	low, up := fn.Bounds()

	vlow := make([]float64, len(low))
	vup := make([]float64, len(low))
	for i := range low {
		vup[i] = (up[i] - low[i]) / 10
		vlow[i] = -vup[i]
	}

	positions := pop.NewUniform(n, low, up)
	vels := pop.NewUniform(n, vlow, vup)

	return swarm.NewFromPoints(positions, vels, pso.NewObjective(fn.Eval, true),
		swarm.VmaxBounds(low, up),
	)
}
