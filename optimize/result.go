package optimize

import "github.com/statforge/tsmodel/linalg"

// Status is the state of an optimization run. Initialized and Iterating are
// transient; the remaining values are terminal.
type Status int

const (
	// Initialized means the run has been set up but not stepped.
	Initialized Status = iota
	// Iterating means the run is between steps.
	Iterating
	// Converged means successive objective values or the step norm fell
	// below the configured tolerance.
	Converged
	// MaxIterationsExceeded means the iteration or evaluation budget ran
	// out before convergence. The result holds the best point found so
	// far; this is a valid outcome, not an error.
	MaxIterationsExceeded
	// Failed means the objective produced a non-finite value.
	Failed
	// Cancelled means the run's context was cancelled between iterations.
	Cancelled
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterationsExceeded:
		return "max iterations exceeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the immutable outcome of one optimization run.
type Result struct {
	// X is the best point found.
	X linalg.Vector
	// Value is the objective value at X.
	Value float64
	// Iterations is the number of iterations performed.
	Iterations int
	// Evaluations is the number of objective evaluations consumed by the
	// run, including evaluations of the initial simplex.
	Evaluations int
	// Status is the terminal state of the run.
	Status Status
}
