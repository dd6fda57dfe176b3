package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v := NewVector()
		require.Equal(t, 0, v.Len())
	})

	t.Run("CopiesInput", func(t *testing.T) {
		src := []float64{1, 2, 3}
		v := NewVector(src...)
		src[0] = 99
		got, err := v.At(0)
		require.NoError(t, err)
		require.Equal(t, 1.0, got)
	})
}

func TestVectorAt(t *testing.T) {
	v := NewVector(1, 2, 3)

	got, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	_, err = v.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = v.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, 5, 6)

	t.Run("Plus", func(t *testing.T) {
		sum, err := a.Plus(b)
		require.NoError(t, err)
		require.Equal(t, []float64{5, 7, 9}, sum.Values())
	})

	t.Run("Minus", func(t *testing.T) {
		diff, err := b.Minus(a)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 3, 3}, diff.Values())
	})

	t.Run("PlusMinusRoundTrip", func(t *testing.T) {
		sum, err := a.Plus(b)
		require.NoError(t, err)
		back, err := sum.Minus(b)
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := a.Plus(NewVector(1, 2))
		require.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = a.Minus(NewVector(1, 2))
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("ScaledBy", func(t *testing.T) {
		require.Equal(t, []float64{2, 4, 6}, a.ScaledBy(2).Values())
	})

	t.Run("Dot", func(t *testing.T) {
		dot, err := a.Dot(b)
		require.NoError(t, err)
		require.Equal(t, 32.0, dot)

		_, err = a.Dot(NewVector(1))
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestVectorNorm(t *testing.T) {
	require.Equal(t, 5.0, NewVector(3, 4).Norm())
	require.Equal(t, 0.0, NewVector().Norm())
}

func TestVectorEqualHash(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(1, 2, 3)
	c := NewVector(1, 2, 4)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(NewVector(1, 2)))

	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestVectorValuesDefensiveCopy(t *testing.T) {
	v := NewVector(1, 2, 3)
	vals := v.Values()
	vals[0] = 42
	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}
