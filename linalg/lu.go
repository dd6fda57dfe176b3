package linalg

import (
	"fmt"
	"math"
)

// DefaultSingularTol is the default relative tolerance used to decide that a
// pivot is too small for a decomposition to proceed. It is scaled by the
// largest absolute element of the matrix being decomposed.
const DefaultSingularTol = 1e-12

// LU is the LU decomposition of a square matrix with partial pivoting,
// computed once and reusable across multiple right-hand sides.
type LU struct {
	n    int
	lu   []float64
	pivs []int
}

// DecomposeLU computes the LU decomposition of the square matrix a using
// partial pivoting. A pivot smaller than tol times the largest absolute
// element of a marks the matrix as singular to working precision. A
// non-positive tol falls back to DefaultSingularTol.
func DecomposeLU(a *Matrix, tol float64) (*LU, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("%w: LU decomposition requires a square matrix, have %dx%d",
			ErrInvalidDimension, a.Nrow(), a.Ncol())
	}
	if tol <= 0 {
		tol = DefaultSingularTol
	}
	n := a.Nrow()
	lu := a.Data()

	scale := 0.0
	for _, e := range lu {
		if abs := math.Abs(e); abs > scale {
			scale = abs
		}
	}
	if scale == 0 {
		scale = 1
	}
	threshold := tol * scale

	pivs := make([]int, n)
	for i := range pivs {
		pivs[i] = i
	}

	for k := 0; k < n; k++ {
		// Select the row with the largest magnitude in column k.
		p := k
		maxAbs := math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if abs := math.Abs(lu[i*n+k]); abs > maxAbs {
				maxAbs = abs
				p = i
			}
		}
		if maxAbs <= threshold {
			return nil, fmt.Errorf("%w: pivot %g at column %d below threshold %g",
				ErrSingularMatrix, maxAbs, k, threshold)
		}
		if p != k {
			for j := 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			pivs[k], pivs[p] = pivs[p], pivs[k]
		}
		for i := k + 1; i < n; i++ {
			lu[i*n+k] /= lu[k*n+k]
			factor := lu[i*n+k]
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: lu, pivs: pivs}, nil
}

// Solve solves the system A*x = b for the decomposed matrix A.
func (d *LU) Solve(b Vector) (Vector, error) {
	if b.Len() != d.n {
		return Vector{}, fmt.Errorf("%w: right-hand side of length %d for a %dx%d system",
			ErrDimensionMismatch, b.Len(), d.n, d.n)
	}
	n := d.n
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = b.elems[d.pivs[i]]
	}
	// Forward substitution with the unit lower triangle.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			x[i] -= d.lu[i*n+j] * x[j]
		}
	}
	// Back substitution with the upper triangle.
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			x[i] -= d.lu[i*n+j] * x[j]
		}
		x[i] /= d.lu[i*n+i]
	}
	return Vector{elems: x}, nil
}

// Inverse computes the inverse of the decomposed matrix by solving against
// each column of the identity.
func (d *LU) Inverse() (*Matrix, error) {
	n := d.n
	inv := make([]float64, n*n)
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		col, err := d.Solve(Vector{elems: e})
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			inv[i*n+j] = col.elems[i]
		}
	}
	return &Matrix{nrow: n, ncol: n, data: inv}, nil
}

// Solve solves the linear system a*x = b using an LU decomposition with the
// default singularity tolerance.
func Solve(a *Matrix, b Vector) (Vector, error) {
	d, err := DecomposeLU(a, DefaultSingularTol)
	if err != nil {
		return Vector{}, err
	}
	return d.Solve(b)
}

// Inverse computes the inverse of the square matrix a using an LU
// decomposition with the default singularity tolerance.
func Inverse(a *Matrix) (*Matrix, error) {
	d, err := DecomposeLU(a, DefaultSingularTol)
	if err != nil {
		return nil, err
	}
	return d.Inverse()
}
