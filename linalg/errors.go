package linalg

import "errors"

var (
	// ErrInvalidDimension indicates that the dimensions supplied at
	// construction do not match the amount of data provided.
	ErrInvalidDimension = errors.New("linalg: dimensions do not match the data provided")
	// ErrDimensionMismatch indicates that the shapes of two operands are
	// incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("linalg: operand dimensions are incompatible")
	// ErrIndexOutOfRange indicates an element access outside the bounds of
	// the container.
	ErrIndexOutOfRange = errors.New("linalg: index out of range")
	// ErrSingularMatrix indicates that a matrix is singular, or close enough
	// to singular that solving with it would produce unreliable results.
	ErrSingularMatrix = errors.New("linalg: matrix is singular to working precision")
)
