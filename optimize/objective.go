package optimize

import (
	"math"

	"github.com/statforge/tsmodel/linalg"
)

// Objective is a scalar function of a real vector together with a count of
// how many evaluations have occurred since construction. Implementations
// carry mutable counter state and are owned by a single optimization run;
// concurrent evaluation of one instance would race the counter.
type Objective interface {
	// At evaluates the function at the given point. Each call increments
	// the evaluation counter exactly once.
	At(point linalg.Vector) float64
	// Evaluations returns the number of times At has been called since the
	// objective was constructed.
	Evaluations() int
}

// Func wraps an arbitrary closure as an Objective.
type Func struct {
	fn    func(linalg.Vector) float64
	evals int
}

// NewObjective creates an Objective from the given function.
func NewObjective(fn func(linalg.Vector) float64) *Func {
	return &Func{fn: fn}
}

// At evaluates the wrapped function at the given point.
func (f *Func) At(point linalg.Vector) float64 {
	f.evals++
	return f.fn(point)
}

// Evaluations returns the number of evaluations performed so far.
func (f *Func) Evaluations() int {
	return f.evals
}

// ScalarFunc wraps a univariate function with an evaluation counter.
type ScalarFunc struct {
	fn    func(float64) float64
	evals int
}

// NewScalarObjective creates a counted univariate objective.
func NewScalarObjective(fn func(float64) float64) *ScalarFunc {
	return &ScalarFunc{fn: fn}
}

// AtPoint evaluates the wrapped function at the given point. Each call
// increments the evaluation counter exactly once.
func (f *ScalarFunc) AtPoint(x float64) float64 {
	f.evals++
	return f.fn(x)
}

// Evaluations returns the number of evaluations performed so far.
func (f *ScalarFunc) Evaluations() int {
	return f.evals
}

// Multivariate adapts the univariate objective to the Objective interface
// over one-dimensional vectors. The adapter shares the scalar counter rather
// than layering a second one, so every evaluation is counted exactly once.
func (f *ScalarFunc) Multivariate() Objective {
	return scalarAdapter{f}
}

type scalarAdapter struct {
	s *ScalarFunc
}

func (a scalarAdapter) At(point linalg.Vector) float64 {
	x, err := point.At(0)
	if err != nil {
		// Count the attempt and let the minimizer observe the failure.
		a.s.evals++
		return math.NaN()
	}
	return a.s.AtPoint(x)
}

func (a scalarAdapter) Evaluations() int {
	return a.s.Evaluations()
}
