package pso

import (
	"errors"
	"math"
	"testing"
)

func sphere(v []float64) float64 {
	tot := 0.0
	for _, x := range v {
		tot += x * x
	}
	return tot
}

func TestObjectiveValue(t *testing.T) {
	for _, minimize := range []bool{true, false} {
		obj := NewObjective(sphere, minimize)
		v := []float64{3, 4}
		if got := obj.Value(v); got != 25 {
			t.Errorf("[ERROR] minimize=%v: Value(%v) = %v, want 25", minimize, v, got)
		}
	}
}

func TestObjectiveMax(t *testing.T) {
	v := []float64{3, 4}

	obj := NewObjective(sphere, true)
	got, err := obj.Max(v)
	if err != nil {
		t.Errorf("[ERROR] unexpected error: %v", err)
	}
	if got != -25 {
		t.Errorf("[ERROR] minimization Max(%v) = %v, want -25", v, got)
	}

	obj = NewObjective(sphere, false)
	got, err = obj.Max(v)
	if err != nil {
		t.Errorf("[ERROR] unexpected error: %v", err)
	}
	if got != 25 {
		t.Errorf("[ERROR] maximization Max(%v) = %v, want 25", v, got)
	}
}

func TestObjectiveMaxNaN(t *testing.T) {
	obj := NewObjective(func(v []float64) float64 { return math.NaN() }, true)
	_, err := obj.Max([]float64{0})
	if !errors.Is(err, ErrNaNFitness) {
		t.Errorf("[ERROR] expected ErrNaNFitness, got %v", err)
	}
}

func TestObjectiveMaxInf(t *testing.T) {
	// Infinities are legal fitness values - they are the usual out-of-bounds
	// sentinel and must stay orderable.
	obj := NewObjective(func(v []float64) float64 { return math.Inf(1) }, true)
	got, err := obj.Max([]float64{0})
	if err != nil {
		t.Errorf("[ERROR] unexpected error for +Inf: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Errorf("[ERROR] minimization Max of +Inf = %v, want -Inf", got)
	}
}

func TestObjectiveFromMax(t *testing.T) {
	v := []float64{1, 2}
	for _, minimize := range []bool{true, false} {
		obj := NewObjective(sphere, minimize)
		max, err := obj.Max(v)
		if err != nil {
			t.Fatalf("[ERROR] unexpected error: %v", err)
		}
		if got := obj.FromMax(max); got != obj.Value(v) {
			t.Errorf("[ERROR] minimize=%v: FromMax(Max(v)) = %v, want %v", minimize, got, obj.Value(v))
		}
	}
}
