package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	s := New(src)
	src[0] = 99
	require.Equal(t, []float64{1, 2, 3}, s.Values())

	vals := s.Values()
	vals[1] = 42
	require.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestSummaryStatistics(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	require.InDelta(t, 5.0, s.Mean(), 1e-12)
	require.InDelta(t, 4.571428571, s.Variance(), 1e-8)
	require.InDelta(t, math.Sqrt(4.571428571), s.Std(), 1e-8)
	require.Equal(t, 2.0, s.Min())
	require.Equal(t, 9.0, s.Max())
	require.Equal(t, 4.5, s.Median())
}

func TestSummaryStatisticsEmpty(t *testing.T) {
	s := New(nil)
	require.Equal(t, 0.0, s.Mean())
	require.Equal(t, 0.0, s.Variance())
	require.True(t, math.IsNaN(s.Min()))
	require.True(t, math.IsNaN(s.Max()))
	require.True(t, math.IsNaN(s.Median()))
}

func TestDiff(t *testing.T) {
	s := New([]float64{1, 3, 6, 10})

	d := s.Diff()
	require.Equal(t, []float64{2, 3, 4}, d.Values())

	d2 := s.DiffN(2)
	require.Equal(t, []float64{5, 7}, d2.Values())

	require.Equal(t, 0, s.DiffN(4).Len())
	require.Equal(t, 0, s.DiffN(0).Len())
}

func TestLagSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	require.Equal(t, []float64{1, 2, 3}, s.Lag(2).Values())
	require.Equal(t, 0, s.Lag(5).Len())

	require.Equal(t, []float64{2, 3, 4}, s.Slice(1, 4).Values())
	require.Equal(t, []float64{1, 2}, s.Slice(-3, 2).Values())
	require.Equal(t, 0, s.Slice(4, 2).Len())
}

func TestPlusMinus(t *testing.T) {
	a := New([]float64{5, 7, 9})
	b := New([]float64{1, 2, 3})

	sum, err := a.Plus(b)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 9, 12}, sum.Values())

	diff, err := a.Minus(b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, diff.Values())

	_, err = a.Minus(New([]float64{1}))
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = a.Plus(New([]float64{1}))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLogTransform(t *testing.T) {
	s := New([]float64{1, math.E, 0})
	got := s.Log().Values()
	require.InDelta(t, 0.0, got[0], 1e-12)
	require.InDelta(t, 1.0, got[1], 1e-12)
	require.True(t, math.IsNaN(got[2]))
}

func TestMovingAverage(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	ma := s.MovingAverage(3)
	require.Equal(t, []float64{2, 3, 4}, ma.Values())
	require.Equal(t, 0, s.MovingAverage(6).Len())
}

func TestNormalize(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	n := s.Normalize()
	require.InDelta(t, 0.0, n.Mean(), 1e-12)
	require.InDelta(t, 1.0, n.Std(), 1e-12)

	flat := New([]float64{3, 3, 3})
	require.Equal(t, []float64{3, 3, 3}, flat.Normalize().Values())
}

func TestVector(t *testing.T) {
	s := New([]float64{1, 2, 3})
	v := s.Vector()
	require.Equal(t, 3, v.Len())
	require.Equal(t, []float64{1, 2, 3}, v.Values())
}

func TestEqual(t *testing.T) {
	require.True(t, New([]float64{1, 2}).Equal(New([]float64{1, 2})))
	require.False(t, New([]float64{1, 2}).Equal(New([]float64{1, 3})))
	require.False(t, New([]float64{1, 2}).Equal(New([]float64{1})))
}
