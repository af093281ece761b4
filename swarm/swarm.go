// Package swarm implements the particle swarm optimization engine: the
// particle state model, the velocity/position update rule, and global/local
// best tracking across iterations.
package swarm

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quebin31/pso"
	"github.com/quebin31/pso/pop"
)

// Default velocity-update parameters from Clerc's constriction analysis with
// c1 = c2 = 2.05: the coefficients are c*k and the inertia is the
// constriction coefficient k itself.
const (
	DefaultCognition = 1.496179765663133
	DefaultSocial    = 1.496179765663133
	DefaultInertia   = 0.7298437881283576
)

// Constriction calculates the constriction coefficient k for the given c1 and
// c2 in the velocity equation
//
//	v_next = k*(v_curr + c1*r1*(p_personal-x) + c2*r2*(p_glob-x))
//
// c1+c2 should usually be greater than (but close to) 4.
func Constriction(c1, c2 float64) float64 {
	phi := c1 + c2
	return 2 / math.Abs(2-phi-math.Sqrt(phi*phi-4*phi))
}

// Options holds the per-step velocity-update parameters.
type Options struct {
	// Omega is the inertia weight.  If nil, a fresh uniform value in [0, 1)
	// is drawn once per step and shared by every particle that step.
	Omega *float64
	// Phi1 weights the pull toward a particle's own best position.
	Phi1 float64
	// Phi2 weights the pull toward the swarm's best position.
	Phi2 float64
}

// DefaultOptions returns options with the constriction-derived defaults and a
// fixed inertia weight.
func DefaultOptions() Options {
	w := DefaultInertia
	return Options{Omega: &w, Phi1: DefaultCognition, Phi2: DefaultSocial}
}

// FixedOmega is a convenience for building Options literals with a concrete
// inertia weight.
func FixedOmega(w float64) *float64 { return &w }

// Particle is one candidate solution: a current position, a velocity, and the
// best position the particle has ever held.  Pos, Vel, and BestPos always
// have the swarm's dimensionality.
type Particle struct {
	Id  int
	Pos []float64
	Vel []float64
	// BestPos is the best position this particle has ever held under the
	// objective's maximize view; BestVal is that view's value for it.
	BestPos []float64
	BestVal float64
}

// Move updates the particle's velocity from the swarm best gbest and then
// displaces its position by the new velocity.  r1 and r2 are the particle's
// stochastic update coefficients for this step; they are drawn once per
// particle and shared across dimensions.  vmax, if non-nil, caps per-dimension
// speed.
func (p *Particle) Move(gbest, vmax []float64, omega, phi1, phi2, r1, r2 float64) {
	for i, currv := range p.Vel {
		p.Vel[i] = omega*currv +
			phi1*r1*(p.BestPos[i]-p.Pos[i]) +
			phi2*r2*(gbest[i]-p.Pos[i])
		if vmax != nil && math.Abs(p.Vel[i]) > vmax[i] {
			p.Vel[i] = math.Copysign(vmax[i], p.Vel[i])
		}
	}

	// position update must use the post-update velocity
	for i := range p.Pos {
		p.Pos[i] += p.Vel[i]
	}
}

// UpdateBest evaluates the particle's current position and replaces its
// personal best on strict improvement - ties keep the incumbent.  It returns
// the maximize-view value of the current position.
func (p *Particle) UpdateBest(obj pso.Objective) (float64, error) {
	val, err := obj.Max(p.Pos)
	if err != nil {
		return val, err
	}
	if val > p.BestVal {
		p.BestVal = val
		p.BestPos = append(p.BestPos[:0:0], p.Pos...)
	}
	return val, nil
}

// Option configures a Swarm at construction.
type Option func(*Swarm)

// DB enables recording of per-iteration particle state and swarm bests into
// the given database.
func DB(db *sql.DB) Option {
	return func(s *Swarm) { s.db = db }
}

// Rng sets the random source used for per-step inertia draws and the
// per-particle update coefficients.  The default is pso.Rand.
func Rng(rng *rand.Rand) Option {
	return func(s *Swarm) { s.rng = rng }
}

// Parallel updates particles with up to n concurrent workers per step.
// Trajectories are identical to the serial ones: all random draws happen
// before workers start, and best tracking waits for every update to finish.
func Parallel(n int) Option {
	return func(s *Swarm) { s.nproc = n }
}

// Vmax sets the maximum particle speed per dimension.  If never set,
// velocities are unbounded.
func Vmax(vmax []float64) Option {
	return func(s *Swarm) { s.vmax = vmax }
}

// VmaxBounds sets the maximum particle speed for each dimension equal to the
// bounded range up[i]-low[i] of the problem.
func VmaxBounds(low, up []float64) Option {
	return func(s *Swarm) {
		vmax := make([]float64, len(low))
		for i := range vmax {
			vmax[i] = up[i] - low[i]
		}
		s.vmax = vmax
	}
}

// Swarm owns the particle population and the best position any particle has
// ever held.  The driver controls iteration: each Step call advances the
// swarm by exactly one iteration.
type Swarm struct {
	Pop []*Particle

	obj   pso.Objective
	rng   *rand.Rand
	vmax  []float64
	nproc int
	db    *sql.DB
	count int

	bestPos   []float64
	bestVal   float64 // maximize view
	lastOmega float64
}

// New creates a swarm of n particles of dimension ndim with initial positions
// and velocities sampled independently per component from posDist and
// velDist.  The swarm best starts at the fittest initial position.
func New(n, ndim int, posDist, velDist distuv.Rander, obj pso.Objective, opts ...Option) (*Swarm, error) {
	if n < 1 {
		return nil, fmt.Errorf("swarm: population size must be at least 1, got %v", n)
	} else if ndim < 1 {
		return nil, fmt.Errorf("swarm: dimension must be at least 1, got %v", ndim)
	}
	return NewFromPoints(pop.New(n, ndim, posDist), pop.New(n, ndim, velDist), obj, opts...)
}

// NewFromPoints creates a swarm from pre-drawn initial positions and
// velocities.  positions and vels must have the same length and uniform
// dimensionality; both are copied.
func NewFromPoints(positions, vels [][]float64, obj pso.Objective, opts ...Option) (*Swarm, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("swarm: population size must be at least 1, got 0")
	} else if len(vels) != len(positions) {
		return nil, fmt.Errorf("swarm: got %v positions but %v velocities", len(positions), len(vels))
	}

	ndim := len(positions[0])
	if ndim == 0 {
		return nil, fmt.Errorf("swarm: dimension must be at least 1, got 0")
	}

	s := &Swarm{
		Pop:       make([]*Particle, len(positions)),
		obj:       obj,
		rng:       pso.Rand,
		lastOmega: math.NaN(),
	}

	for i, pos := range positions {
		if len(pos) != ndim || len(vels[i]) != ndim {
			return nil, fmt.Errorf("swarm: particle %v does not have uniform dimension %v", i, ndim)
		}

		val, err := obj.Max(pos)
		if err != nil {
			return nil, err
		}

		cpos := append([]float64{}, pos...)
		s.Pop[i] = &Particle{
			Id:      i,
			Pos:     cpos,
			Vel:     append([]float64{}, vels[i]...),
			BestPos: append([]float64{}, pos...),
			BestVal: val,
		}

		if i == 0 || val > s.bestVal {
			s.bestVal = val
			s.bestPos = append([]float64{}, pos...)
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.initdb(); err != nil {
		return nil, err
	}
	return s, nil
}

// Step advances the swarm by one iteration: it resolves the inertia weight,
// moves and rescores every particle, and then - only after all updates have
// finished - replaces the swarm best if this iteration's best current
// position strictly beats it.  A failed step leaves no meaningful partial
// state; the error is returned immediately and the run should stop.
func (s *Swarm) Step(opt Options) error {
	s.count++

	var omega float64
	if opt.Omega != nil {
		omega = *opt.Omega
	} else {
		omega = s.rng.Float64()
	}
	s.lastOmega = omega

	// the step works against a frozen copy of the swarm best; updates only
	// become visible to best tracking below
	gbest := append([]float64{}, s.bestPos...)

	// All random draws happen up front so that trajectories depend only on
	// the draw sequence, never on how particle updates are scheduled.
	r1 := make([]float64, len(s.Pop))
	r2 := make([]float64, len(s.Pop))
	for i := range s.Pop {
		r1[i] = s.rng.Float64()
		r2[i] = s.rng.Float64()
	}

	vals := make([]float64, len(s.Pop))
	if s.nproc > 1 {
		wp := pool.New().WithMaxGoroutines(s.nproc).WithErrors()
		for i, p := range s.Pop {
			i, p := i, p
			wp.Go(func() error {
				p.Move(gbest, s.vmax, omega, opt.Phi1, opt.Phi2, r1[i], r2[i])
				var err error
				vals[i], err = p.UpdateBest(s.obj)
				return err
			})
		}
		if err := wp.Wait(); err != nil {
			return err
		}
	} else {
		for i, p := range s.Pop {
			p.Move(gbest, s.vmax, omega, opt.Phi1, opt.Phi2, r1[i], r2[i])
			var err error
			vals[i], err = p.UpdateBest(s.obj)
			if err != nil {
				return err
			}
		}
	}

	// this iteration's best current position, compared against the swarm
	// best on strict improvement only
	for i, p := range s.Pop {
		if vals[i] > s.bestVal {
			s.bestVal = vals[i]
			s.bestPos = append([]float64{}, p.Pos...)
		}
	}

	return s.updateDb(vals)
}

// Best returns a copy of the best position any particle has ever held.
func (s *Swarm) Best() []float64 {
	return append([]float64{}, s.bestPos...)
}

// BestVal returns the objective value of the swarm best in the caller's
// intended direction.
func (s *Swarm) BestVal() float64 { return s.obj.FromMax(s.bestVal) }

// Objective returns the swarm's objective wrapper.
func (s *Swarm) Objective() pso.Objective { return s.obj }

// Particles returns the particle population in insertion order.
func (s *Swarm) Particles() []*Particle { return s.Pop }

// Niter returns the number of completed iterations.
func (s *Swarm) Niter() int { return s.count }

// LastOmega returns the inertia weight resolved by the most recent Step,
// whether it came from the caller's options or from the per-step uniform
// draw.  It returns NaN before the first step.
func (s *Swarm) LastOmega() float64 { return s.lastOmega }
