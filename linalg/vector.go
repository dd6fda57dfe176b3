package linalg

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Vector is an immutable, fixed-length sequence of real numbers. The zero
// value is an empty vector. All operations return new vectors and never
// mutate the receiver, so vectors are safe for concurrent read-only use.
type Vector struct {
	elems []float64
}

// NewVector creates a new vector from the given elements. An empty argument
// list produces a zero-length vector.
func NewVector(elems ...float64) Vector {
	data := make([]float64, len(elems))
	copy(data, elems)
	return Vector{elems: data}
}

// Len returns the number of elements in the vector.
func (v Vector) Len() int {
	return len(v.elems)
}

// At returns the element at position i.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, fmt.Errorf("%w: element %d of a vector of length %d", ErrIndexOutOfRange, i, len(v.elems))
	}
	return v.elems[i], nil
}

// Values returns a copy of the elements of the vector.
func (v Vector) Values() []float64 {
	data := make([]float64, len(v.elems))
	copy(data, v.elems)
	return data
}

// Plus adds this vector to the other vector elementwise.
func (v Vector) Plus(other Vector) (Vector, error) {
	if len(v.elems) != len(other.elems) {
		return Vector{}, fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, len(v.elems), len(other.elems))
	}
	sum := make([]float64, len(v.elems))
	for i := range v.elems {
		sum[i] = v.elems[i] + other.elems[i]
	}
	return Vector{elems: sum}, nil
}

// Minus subtracts the other vector from this vector elementwise.
func (v Vector) Minus(other Vector) (Vector, error) {
	if len(v.elems) != len(other.elems) {
		return Vector{}, fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, len(v.elems), len(other.elems))
	}
	diff := make([]float64, len(v.elems))
	for i := range v.elems {
		diff[i] = v.elems[i] - other.elems[i]
	}
	return Vector{elems: diff}, nil
}

// ScaledBy returns this vector scaled by the constant c.
func (v Vector) ScaledBy(c float64) Vector {
	scaled := make([]float64, len(v.elems))
	for i, e := range v.elems {
		scaled[i] = e * c
	}
	return Vector{elems: scaled}
}

// Dot returns the inner product of this vector with the other vector.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v.elems) != len(other.elems) {
		return 0, fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, len(v.elems), len(other.elems))
	}
	sum := 0.0
	for i := range v.elems {
		sum += v.elems[i] * other.elems[i]
	}
	return sum, nil
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, e := range v.elems {
		sum += e * e
	}
	return math.Sqrt(sum)
}

// Equal reports whether this vector and the other vector have the same
// length and identical elements.
func (v Vector) Equal(other Vector) bool {
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of the vector, covering its length and the
// bit patterns of its elements. Vectors that are Equal hash identically.
func (v Vector) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(v.elems)))
	_, _ = d.Write(buf[:])
	for _, e := range v.elems {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(e))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
