package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/statforge/tsmodel/linalg"
)

// ErrLengthMismatch indicates an elementwise operation over two series of
// different lengths.
var ErrLengthMismatch = errors.New("timeseries: series lengths differ")

// Series is an immutable sequence of observations. Construction copies the
// input and every transformation returns a new series, so a Series is safe
// to share across goroutines for concurrent reads.
type Series struct {
	name   string
	values []float64
}

// New creates a new series from the given values.
func New(values []float64) *Series {
	return Named("", values)
}

// Named creates a new series with the given name.
func Named(name string, values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{name: name, values: v}
}

// Name returns the name of the series.
func (s *Series) Name() string {
	return s.name
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.values)
}

// Values returns a copy of the observations.
func (s *Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// Vector returns the observations as a linalg vector.
func (s *Series) Vector() linalg.Vector {
	return linalg.NewVector(s.values...)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.values))
	copy(sorted, s.values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Plus adds the other series to this series elementwise.
func (s *Series) Plus(other *Series) (*Series, error) {
	if len(s.values) != len(other.values) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(s.values), len(other.values))
	}
	result := make([]float64, len(s.values))
	for i, v := range s.values {
		result[i] = v + other.values[i]
	}
	return &Series{name: s.name, values: result}, nil
}

// Minus subtracts the other series from this series elementwise.
func (s *Series) Minus(other *Series) (*Series, error) {
	if len(s.values) != len(other.values) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(s.values), len(other.values))
	}
	result := make([]float64, len(s.values))
	for i, v := range s.values {
		result[i] = v - other.values[i]
	}
	return &Series{name: s.name, values: result}, nil
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the lag-n difference of the series. The result is n
// observations shorter; a series too short to difference comes back empty.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.values) <= n {
		return &Series{name: s.name + "_diff"}
	}
	result := make([]float64, len(s.values)-n)
	for i := n; i < len(s.values); i++ {
		result[i-n] = s.values[i] - s.values[i-n]
	}
	return &Series{name: s.name + "_diff", values: result}
}

// Lag returns the series shifted back by k observations.
func (s *Series) Lag(k int) *Series {
	if k <= 0 || k >= len(s.values) {
		return &Series{name: s.name + "_lag"}
	}
	result := make([]float64, len(s.values)-k)
	copy(result, s.values[:len(s.values)-k])
	return &Series{name: s.name + "_lag", values: result}
}

// Slice returns the observations from start to end (exclusive) as a new
// series. Out-of-range endpoints are clipped.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.values) {
		end = len(s.values)
	}
	if start >= end {
		return &Series{name: s.name}
	}
	values := make([]float64, end-start)
	copy(values, s.values[start:end])
	return &Series{name: s.name, values: values}
}

// Log applies the natural logarithm to every observation. Non-positive
// observations map to NaN.
func (s *Series) Log() *Series {
	result := make([]float64, len(s.values))
	for i, v := range s.values {
		if v > 0 {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}
	return &Series{name: s.name + "_log", values: result}
}

// MovingAverage calculates a simple moving average with the given window.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.values) {
		return &Series{name: s.name + "_ma"}
	}
	result := make([]float64, len(s.values)-window+1)
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += s.values[i]
	}
	result[0] = sum / float64(window)
	for i := window; i < len(s.values); i++ {
		sum = sum - s.values[i-window] + s.values[i]
		result[i-window+1] = sum / float64(window)
	}
	return &Series{name: s.name + "_ma", values: result}
}

// Normalize standardizes the series to zero mean and unit variance. A
// constant series is returned unchanged.
func (s *Series) Normalize() *Series {
	mean := s.Mean()
	std := s.Std()
	if std == 0 {
		return &Series{name: s.name, values: s.Values()}
	}
	result := make([]float64, len(s.values))
	for i, v := range s.values {
		result[i] = (v - mean) / std
	}
	return &Series{name: s.name + "_normalized", values: result}
}

// Equal reports whether both series hold identical observations.
func (s *Series) Equal(other *Series) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}
