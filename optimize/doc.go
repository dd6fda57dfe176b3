// Package optimize implements derivative-free nonlinear minimization over
// scalar objective functions of a real vector.
//
// An Objective wraps a pure function with an evaluation counter that
// increments exactly once per call, including calls made internally by the
// minimizer and by the finite-difference gradient and Hessian estimators.
// The counter is diagnostic state owned by a single optimization run; an
// objective instance must not be shared between concurrent runs.
//
// # Minimizing a function
//
//	obj := optimize.NewObjective(func(x linalg.Vector) float64 {
//	    v := x.Values()
//	    return v[0]*v[0] + v[1]*v[1]
//	})
//	min := optimize.NewMinimizer(optimize.DefaultConfig())
//	res, err := min.Minimize(ctx, obj, linalg.NewVector(3, -2))
//
// The returned Result carries the minimizing point, the minimal value,
// iteration and evaluation counts, and a terminal Status. A run that stops
// on its iteration or evaluation budget ends in MaxIterationsExceeded with
// the best point found so far; this is a valid outcome the caller must
// distinguish from Converged, not an error. A run whose objective produces
// NaN or Inf ends in Failed with ErrObjectiveEvaluation, and a run whose
// context is cancelled between iterations ends in Cancelled.
//
// The minimizer is a Nelder-Mead simplex search with optional box bounds.
// Candidate ranking is deterministic: vertices with equal objective values
// are ordered by the smaller parameter-vector norm.
//
// Package-level test functions (Sphere, ExpSin, Rosenbrock, Rastrigin,
// AbsValue) are canonical objectives used to validate convergence.
package optimize
