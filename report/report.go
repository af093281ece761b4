// Package report renders swarm state for human consumption: textual
// summaries and particle position plots.  It only reads swarm state; the
// driver decides when and how often to report.
package report

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quebin31/pso/swarm"
)

// Summary formats the swarm's per-particle fitnesses, personal bests, and
// global best.  Particle positions and velocities are listed too when
// showParticles is set.  All values are reported in the objective's natural
// direction.
func Summary(s *swarm.Swarm, showParticles bool) string {
	var head, particles, fitness, blocals strings.Builder
	obj := s.Objective()

	if s.Niter() > 0 {
		fmt.Fprintf(&head, "omega: %v\n", s.LastOmega())
	}

	if showParticles {
		fmt.Fprintln(&particles, ">>> Particles <<<")
	}
	fmt.Fprintln(&fitness, ">>> Fitness <<<")
	fmt.Fprintln(&blocals, ">>> Personal bests <<<")

	vals := make([]float64, len(s.Particles()))
	for i, p := range s.Particles() {
		if showParticles {
			fmt.Fprintf(&particles, "%v) x: %v, v: %v\n", i+1, p.Pos, p.Vel)
		}

		vals[i] = obj.Value(p.Pos)
		fmt.Fprintf(&fitness, "%v) %v\n", i+1, vals[i])
		fmt.Fprintf(&blocals, "%v) x: %v, fitness: %v\n", i+1, p.BestPos, obj.FromMax(p.BestVal))
	}

	// stat.StdDev needs two samples; a lone particle has zero spread
	std := 0.0
	if len(vals) > 1 {
		std = stat.StdDev(vals, nil)
	}
	fmt.Fprintf(&fitness, "mean: %v, stddev: %v\n", stat.Mean(vals, nil), std)

	best := fmt.Sprintf(">>> Global best: x: %v, fitness: %v", s.Best(), s.BestVal())
	return head.String() + particles.String() + fitness.String() + blocals.String() + best
}

// Plot writes a scatter plot of the particles' current positions (first two
// dimensions) to path.  The image format is inferred from the file extension.
func Plot(s *swarm.Swarm, path string) error {
	pop := s.Particles()
	if len(pop[0].Pos) < 2 {
		return fmt.Errorf("report: position plots need at least 2 dimensions, swarm has %v", len(pop[0].Pos))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("swarm (iter = %v)", s.Niter())
	p.X.Label.Text = "x0"
	p.Y.Label.Text = "x1"

	pts := make(plotter.XYs, len(pop))
	for i, particle := range pop {
		pts[i].X = particle.Pos[0]
		pts[i].Y = particle.Pos[1]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(sc)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
