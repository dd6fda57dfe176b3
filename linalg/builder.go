package linalg

import "fmt"

// IdentityBuilder stages a square matrix that starts as the identity matrix.
// Single cells are overwritten with Set before Build produces an immutable
// Matrix. A builder is single-use and owned by its caller; it must not be
// shared between goroutines.
type IdentityBuilder struct {
	n    int
	data []float64
	err  error
}

// NewIdentityBuilder creates a builder for an n by n matrix pre-seeded as
// the identity matrix.
func NewIdentityBuilder(n int) *IdentityBuilder {
	b := &IdentityBuilder{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		b.data[i*n+i] = 1.0
	}
	return b
}

// Set overwrites the element at row i, column j and returns the builder. An
// out-of-range index is recorded and surfaced by Build.
func (b *IdentityBuilder) Set(i, j int, value float64) *IdentityBuilder {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		if b.err == nil {
			b.err = fmt.Errorf("%w: element (%d, %d) of a %dx%d builder",
				ErrIndexOutOfRange, i, j, b.n, b.n)
		}
		return b
	}
	b.data[i*b.n+j] = value
	return b
}

// Build produces the immutable matrix staged by this builder.
func (b *IdentityBuilder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewMatrix(b.n, b.n, b.data...)
}

// Builder stages a square matrix that starts as the zero matrix. It behaves
// like IdentityBuilder apart from the seed.
type Builder struct {
	n    int
	data []float64
	err  error
}

// NewBuilder creates a builder for an n by n matrix pre-seeded as the zero
// matrix.
func NewBuilder(n int) *Builder {
	return &Builder{n: n, data: make([]float64, n*n)}
}

// Set overwrites the element at row i, column j and returns the builder. An
// out-of-range index is recorded and surfaced by Build.
func (b *Builder) Set(i, j int, value float64) *Builder {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		if b.err == nil {
			b.err = fmt.Errorf("%w: element (%d, %d) of a %dx%d builder",
				ErrIndexOutOfRange, i, j, b.n, b.n)
		}
		return b
	}
	b.data[i*b.n+j] = value
	return b
}

// Build produces the immutable matrix staged by this builder.
func (b *Builder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewMatrix(b.n, b.n, b.data...)
}
