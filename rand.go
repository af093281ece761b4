package pso

import "golang.org/x/exp/rand"

// Rand is the default random number source for the optimizer: per-step
// inertia weights, the per-particle update coefficients, and population
// initialization all draw from it unless overridden.  It doubles as a
// rand.Source for gonum's distuv samplers so a single seed covers both.
// Replace or reseed it before constructing a swarm for reproducible runs.
var Rand = rand.New(rand.NewSource(1))

// RandFloat returns a uniform random value in [0, 1) from Rand.
func RandFloat() float64 { return Rand.Float64() }
