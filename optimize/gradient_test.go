package optimize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statforge/tsmodel/linalg"
)

func TestGradientSphere(t *testing.T) {
	obj := Sphere()
	g := Gradient(obj, linalg.NewVector(1, 2, -3))

	vals := g.Values()
	require.InDelta(t, 2.0, vals[0], 1e-6)
	require.InDelta(t, 4.0, vals[1], 1e-6)
	require.InDelta(t, -6.0, vals[2], 1e-6)

	// Two probes per dimension, all counted.
	require.Equal(t, 6, obj.Evaluations())
}

func TestGradientRosenbrock(t *testing.T) {
	g := Gradient(Rosenbrock(), linalg.NewVector(1, 1))
	for _, v := range g.Values() {
		require.InDelta(t, 0.0, v, 1e-5)
	}
}

func TestHessianSphere(t *testing.T) {
	obj := Sphere()
	h, err := Hessian(obj, linalg.NewVector(1, 2))
	require.NoError(t, err)

	require.Equal(t, 2, h.Nrow())
	want := [][]float64{{2, 0}, {0, 2}}
	for i, row := range h.Data2D(linalg.ByRow) {
		for j, e := range row {
			require.InDelta(t, want[i][j], e, 1e-4)
		}
	}

	// One center, two probes per diagonal entry, four per off-diagonal
	// pair, all counted.
	require.Equal(t, 1+2*2+4, obj.Evaluations())
}

func TestHessianQuadraticCross(t *testing.T) {
	// f(x, y) = x^2 + 3xy + 2y^2 has constant Hessian [[2, 3], [3, 4]].
	obj := NewObjective(func(x linalg.Vector) float64 {
		v := x.Values()
		return v[0]*v[0] + 3*v[0]*v[1] + 2*v[1]*v[1]
	})

	h, err := Hessian(obj, linalg.NewVector(0.7, -1.3))
	require.NoError(t, err)

	want := [][]float64{{2, 3}, {3, 4}}
	for i, row := range h.Data2D(linalg.ByRow) {
		for j, e := range row {
			require.InDelta(t, want[i][j], e, 1e-3)
		}
	}

	// Symmetric by construction.
	require.True(t, h.Equal(h.Transpose()))
}
