package optimize

import "errors"

var (
	// ErrObjectiveEvaluation indicates the objective function produced a
	// non-finite value during optimization.
	ErrObjectiveEvaluation = errors.New("optimize: objective evaluation produced a non-finite value")
	// ErrCancelled indicates the optimization run was cancelled through its
	// context before reaching a terminal state.
	ErrCancelled = errors.New("optimize: run cancelled")
	// ErrInvalidStartPoint indicates the initial point is unusable, for
	// example empty or outside the configured bounds with no feasible clamp.
	ErrInvalidStartPoint = errors.New("optimize: invalid start point")
)
