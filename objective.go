// Package pso provides a particle swarm optimizer for arbitrary real-valued
// objective functions over continuous vector domains.  The root package holds
// the objective wrapper and random number plumbing shared by the subpackages;
// the engine itself lives in the swarm subpackage.
package pso

import (
	"errors"
	"math"
)

// ErrNaNFitness is returned when an objective evaluation produces NaN.  NaN
// values have no place in a fitness ordering, so comparisons reject them
// instead of silently picking a winner.  Infinities are fine - they order
// normally and are commonly used as out-of-bounds sentinels.
var ErrNaNFitness = errors.New("pso: objective function returned NaN")

// Func is a scalar objective function over a fixed-dimension vector.
type Func func(v []float64) float64

// Objective wraps a caller-supplied function together with its intended
// optimization direction.  All best-tracking comparisons inside the optimizer
// go through Max so that "larger is better" holds everywhere regardless of
// direction; the raw direction only matters when reporting values back to the
// caller.  An Objective holds no mutable state and is safe for concurrent use.
type Objective struct {
	fn       Func
	minimize bool
}

// NewObjective wraps fn.  Set minimize to true if lower values of fn are
// better.
func NewObjective(fn Func, minimize bool) Objective {
	return Objective{fn: fn, minimize: minimize}
}

// Minimize reports whether the wrapped function is a minimization problem.
func (o Objective) Minimize() bool { return o.minimize }

// Value returns fn(v) verbatim, in the caller's intended direction.
func (o Objective) Value(v []float64) float64 { return o.fn(v) }

// Max returns the maximize-view value of v: fn(v) for maximization problems
// and -fn(v) for minimization problems.  It returns ErrNaNFitness if the
// evaluation produces NaN.
func (o Objective) Max(v []float64) (float64, error) {
	val := o.fn(v)
	if math.IsNaN(val) {
		return val, ErrNaNFitness
	}
	if o.minimize {
		return -val, nil
	}
	return val, nil
}

// FromMax converts a maximize-view value back to the caller's direction.  It
// is the inverse of the sign handling in Max and avoids re-evaluating the
// objective just to report a value that is already known.
func (o Objective) FromMax(val float64) float64 {
	if o.minimize {
		return -val
	}
	return val
}
