// Package linalg provides the dense linear algebra substrate used by the
// modeling and optimization packages.
//
// The central types are Vector and Matrix, immutable real-valued containers:
// every arithmetic operation returns a new value and never mutates its
// receiver, so they are safe to share across goroutines for concurrent reads.
//
// # Matrices
//
// A Matrix stores its elements internally in row-major order regardless of
// the layout of the data supplied at construction:
//
//	m, err := linalg.NewMatrix(2, 2, 1, 2, 3, 4)
//	t := m.Transpose()
//	p, err := m.Times(t)
//
// Two-dimensional input in either storage order is normalized on ingestion:
//
//	m, err := linalg.FromSlices([][]float64{{1, 2}, {3, 4}}, linalg.ByColumn)
//
// Square matrices can be staged mutably with a builder before being frozen:
//
//	m, err := linalg.NewIdentityBuilder(3).Set(0, 1, 5.0).Build()
//
// # Solving linear systems
//
// The LU decomposition with partial pivoting backs linear system solving and
// matrix inversion. Near-singular systems are detected against a tolerance
// relative to the matrix scale and reported as ErrSingularMatrix instead of
// propagating NaN or Inf:
//
//	x, err := linalg.Solve(a, b)
//	if errors.Is(err, linalg.ErrSingularMatrix) {
//	    // system has no reliable solution
//	}
package linalg
