package linalg

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Order is the storage order of a two-dimensional array representation of a
// matrix: an array of row vectors or an array of column vectors. The Matrix
// type itself always stores its data in row-major order; Order only describes
// data crossing the construction and export boundaries.
type Order int

const (
	// ByRow treats the outer slice as an array of row vectors.
	ByRow Order = iota
	// ByColumn treats the outer slice as an array of column vectors.
	ByColumn
)

// Matrix is an immutable real-valued matrix with row-major internal storage.
// Every arithmetic operation returns a new matrix, so matrices are safe for
// concurrent read-only use.
type Matrix struct {
	nrow int
	ncol int
	data []float64
}

// NewMatrix creates a new nrow by ncol matrix from data given in row-major
// order. The amount of data must match the dimensions exactly.
func NewMatrix(nrow, ncol int, data ...float64) (*Matrix, error) {
	if nrow < 0 || ncol < 0 || nrow*ncol != len(data) {
		return nil, fmt.Errorf("%w: %d data points for a %dx%d matrix",
			ErrInvalidDimension, len(data), nrow, ncol)
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Matrix{nrow: nrow, ncol: ncol, data: d}, nil
}

// Fill creates a new nrow by ncol matrix with every element set to value.
func Fill(nrow, ncol int, value float64) (*Matrix, error) {
	if nrow < 0 || ncol < 0 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrInvalidDimension, nrow, ncol)
	}
	d := make([]float64, nrow*ncol)
	for i := range d {
		d[i] = value
	}
	return &Matrix{nrow: nrow, ncol: ncol, data: d}, nil
}

// FromSlices creates a new matrix from a two-dimensional slice whose outer
// dimension is interpreted per the given order. An empty outer slice produces
// a 0x0 matrix. The rows (or columns) must all have the same length.
func FromSlices(data [][]float64, order Order) (*Matrix, error) {
	if len(data) == 0 {
		return &Matrix{nrow: 0, ncol: 0, data: []float64{}}, nil
	}
	inner := len(data[0])
	for _, s := range data {
		if len(s) != inner {
			return nil, fmt.Errorf("%w: ragged input, expected inner length %d, found %d",
				ErrInvalidDimension, inner, len(s))
		}
	}
	var m *Matrix
	if order == ByColumn {
		m = &Matrix{nrow: inner, ncol: len(data), data: make([]float64, inner*len(data))}
		for i := 0; i < m.nrow; i++ {
			for j := 0; j < m.ncol; j++ {
				m.data[i*m.ncol+j] = data[j][i]
			}
		}
	} else {
		m = &Matrix{nrow: len(data), ncol: inner, data: make([]float64, len(data)*inner)}
		for i, row := range data {
			copy(m.data[i*inner:(i+1)*inner], row)
		}
	}
	return m, nil
}

// Identity creates the n by n identity matrix.
func Identity(n int) *Matrix {
	d := make([]float64, n*n)
	for i := 0; i < n; i++ {
		d[i*n+i] = 1.0
	}
	return &Matrix{nrow: n, ncol: n, data: d}
}

// Nrow returns the number of rows of the matrix.
func (m *Matrix) Nrow() int {
	return m.nrow
}

// Ncol returns the number of columns of the matrix.
func (m *Matrix) Ncol() int {
	return m.ncol
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool {
	return m.nrow == m.ncol
}

// Get returns the element at row i, column j.
func (m *Matrix) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.nrow || j < 0 || j >= m.ncol {
		return 0, fmt.Errorf("%w: element (%d, %d) of a %dx%d matrix",
			ErrIndexOutOfRange, i, j, m.nrow, m.ncol)
	}
	return m.data[i*m.ncol+j], nil
}

// at reads an element without bounds checking. Callers guarantee validity.
func (m *Matrix) at(i, j int) float64 {
	return m.data[i*m.ncol+j]
}

// Plus adds this matrix to the other matrix elementwise.
func (m *Matrix) Plus(other *Matrix) (*Matrix, error) {
	if m.nrow != other.nrow || m.ncol != other.ncol {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch,
			m.nrow, m.ncol, other.nrow, other.ncol)
	}
	sum := make([]float64, len(m.data))
	for i := range m.data {
		sum[i] = m.data[i] + other.data[i]
	}
	return &Matrix{nrow: m.nrow, ncol: m.ncol, data: sum}, nil
}

// Minus subtracts the other matrix from this matrix elementwise.
func (m *Matrix) Minus(other *Matrix) (*Matrix, error) {
	if m.nrow != other.nrow || m.ncol != other.ncol {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch,
			m.nrow, m.ncol, other.nrow, other.ncol)
	}
	diff := make([]float64, len(m.data))
	for i := range m.data {
		diff[i] = m.data[i] - other.data[i]
	}
	return &Matrix{nrow: m.nrow, ncol: m.ncol, data: diff}, nil
}

// Times multiplies this matrix by the other matrix and returns the product.
// The column count of this matrix must equal the row count of the other.
func (m *Matrix) Times(other *Matrix) (*Matrix, error) {
	if m.ncol != other.nrow {
		return nil, fmt.Errorf("%w: %d columns times %d rows", ErrDimensionMismatch,
			m.ncol, other.nrow)
	}
	// The product buffer is nrow x other.ncol, so rows stride by other.ncol.
	product := make([]float64, m.nrow*other.ncol)
	for i := 0; i < m.nrow; i++ {
		for k := 0; k < m.ncol; k++ {
			aik := m.data[i*m.ncol+k]
			for j := 0; j < other.ncol; j++ {
				product[i*other.ncol+j] += aik * other.data[k*other.ncol+j]
			}
		}
	}
	return &Matrix{nrow: m.nrow, ncol: other.ncol, data: product}, nil
}

// TimesVector multiplies this matrix by the given vector.
func (m *Matrix) TimesVector(v Vector) (Vector, error) {
	if m.ncol != v.Len() {
		return Vector{}, fmt.Errorf("%w: %d columns times a vector of length %d",
			ErrDimensionMismatch, m.ncol, v.Len())
	}
	product := make([]float64, m.nrow)
	for i := 0; i < m.nrow; i++ {
		for k := 0; k < m.ncol; k++ {
			product[i] += m.data[i*m.ncol+k] * v.elems[k]
		}
	}
	return Vector{elems: product}, nil
}

// ScaledBy returns this matrix scaled by the constant c.
func (m *Matrix) ScaledBy(c float64) *Matrix {
	scaled := make([]float64, len(m.data))
	for i, e := range m.data {
		scaled[i] = e * c
	}
	return &Matrix{nrow: m.nrow, ncol: m.ncol, data: scaled}
}

// Transpose returns the transpose of this matrix.
func (m *Matrix) Transpose() *Matrix {
	transposed := make([]float64, len(m.data))
	for i := 0; i < m.nrow; i++ {
		for j := 0; j < m.ncol; j++ {
			transposed[j*m.nrow+i] = m.data[i*m.ncol+j]
		}
	}
	return &Matrix{nrow: m.ncol, ncol: m.nrow, data: transposed}
}

// Diagonal returns the elements on the main diagonal of this matrix.
func (m *Matrix) Diagonal() []float64 {
	n := m.nrow
	if m.ncol < n {
		n = m.ncol
	}
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = m.data[i*m.ncol+i]
	}
	return diag
}

// Data returns a copy of the underlying data in row-major order.
func (m *Matrix) Data() []float64 {
	d := make([]float64, len(m.data))
	copy(d, m.data)
	return d
}

// Data2D materializes the matrix as a two-dimensional slice in the given
// storage order.
func (m *Matrix) Data2D(order Order) [][]float64 {
	if order == ByColumn {
		cols := make([][]float64, m.ncol)
		for j := range cols {
			cols[j] = make([]float64, m.nrow)
			for i := 0; i < m.nrow; i++ {
				cols[j][i] = m.data[i*m.ncol+j]
			}
		}
		return cols
	}
	rows := make([][]float64, m.nrow)
	for i := range rows {
		rows[i] = make([]float64, m.ncol)
		copy(rows[i], m.data[i*m.ncol:(i+1)*m.ncol])
	}
	return rows
}

// Row returns the elements of row i as a vector.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.nrow {
		return Vector{}, fmt.Errorf("%w: row %d of a %dx%d matrix",
			ErrIndexOutOfRange, i, m.nrow, m.ncol)
	}
	row := make([]float64, m.ncol)
	copy(row, m.data[i*m.ncol:(i+1)*m.ncol])
	return Vector{elems: row}, nil
}

// Equal reports whether this matrix and the other matrix have the same
// dimensions and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.nrow != other.nrow || m.ncol != other.ncol {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of the matrix, covering its dimensions and
// the bit patterns of its elements. Matrices that are Equal hash identically.
func (m *Matrix) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.nrow))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.ncol))
	_, _ = d.Write(buf[:])
	for _, e := range m.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(e))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
