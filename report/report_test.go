package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quebin31/pso"
	"github.com/quebin31/pso/swarm"
)

func sphere(v []float64) float64 {
	tot := 0.0
	for _, x := range v {
		tot += x * x
	}
	return tot
}

func buildSwarm(t *testing.T) *swarm.Swarm {
	positions := [][]float64{{3, 4}, {1, 1}}
	vels := [][]float64{{0, 0}, {0, 0}}
	s, err := swarm.NewFromPoints(positions, vels, pso.NewObjective(sphere, true))
	if err != nil {
		t.Fatalf("[ERROR] unexpected error: %v", err)
	}
	return s
}

func TestSummary(t *testing.T) {
	s := buildSwarm(t)

	out := Summary(s, true)
	for _, want := range []string{
		">>> Particles <<<",
		">>> Fitness <<<",
		">>> Personal bests <<<",
		">>> Global best: x: [1 1], fitness: 2",
		"1) 25",
		"2) 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("[ERROR] summary missing %q:\n%v", want, out)
		}
	}

	if strings.Contains(out, "omega:") {
		t.Errorf("[ERROR] summary reports an omega before any step has run")
	}

	out = Summary(s, false)
	if strings.Contains(out, ">>> Particles <<<") {
		t.Errorf("[ERROR] summary lists particles with showParticles = false")
	}
}

func TestSummaryOmega(t *testing.T) {
	s := buildSwarm(t)

	err := s.Step(swarm.Options{Omega: swarm.FixedOmega(0.5), Phi1: 0, Phi2: 0})
	if err != nil {
		t.Fatalf("[ERROR] unexpected error: %v", err)
	}

	out := Summary(s, false)
	if !strings.Contains(out, "omega: 0.5") {
		t.Errorf("[ERROR] summary missing the step's resolved omega:\n%v", out)
	}
}

func TestSummarySingleParticle(t *testing.T) {
	s, err := swarm.NewFromPoints([][]float64{{3, 4}}, [][]float64{{0, 0}}, pso.NewObjective(sphere, true))
	if err != nil {
		t.Fatalf("[ERROR] unexpected error: %v", err)
	}

	out := Summary(s, false)
	if !strings.Contains(out, "mean: 25, stddev: 0") {
		t.Errorf("[ERROR] single-particle summary missing fitness stats line:\n%v", out)
	}
}

func TestPlot(t *testing.T) {
	s := buildSwarm(t)

	path := filepath.Join(t.TempDir(), "swarm.png")
	if err := Plot(s, path); err != nil {
		t.Fatalf("[ERROR] unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("[ERROR] plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("[ERROR] plot file is empty")
	}
}

func TestPlotLowDim(t *testing.T) {
	s, err := swarm.NewFromPoints([][]float64{{3}}, [][]float64{{0}}, pso.NewObjective(sphere, true))
	if err != nil {
		t.Fatalf("[ERROR] unexpected error: %v", err)
	}
	if err := Plot(s, filepath.Join(t.TempDir(), "swarm.png")); err == nil {
		t.Errorf("[ERROR] expected error for 1-dimensional swarm")
	}
}
