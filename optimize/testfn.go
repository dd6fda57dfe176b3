package optimize

import (
	"math"

	"github.com/statforge/tsmodel/linalg"
)

// Canonical objectives used to validate minimizer convergence. Each call
// returns a fresh instance with its own evaluation counter.

// Sphere returns the smooth convex function sum of x_i squared, minimized at
// the origin with value zero.
func Sphere() *Func {
	return NewObjective(func(x linalg.Vector) float64 {
		sum := 0.0
		for _, v := range x.Values() {
			sum += v * v
		}
		return sum
	})
}

// ExpSin returns the univariate function -exp(-x)*sin(x). On [0, 2*pi] it
// has its minimum at x = pi/4 with value -exp(-pi/4)/sqrt(2).
func ExpSin() *ScalarFunc {
	return NewScalarObjective(func(x float64) float64 {
		return -math.Exp(-x) * math.Sin(x)
	})
}

// Rosenbrock returns the classic banana-valley function in n dimensions,
// minimized at (1, ..., 1) with value zero. It is smooth but badly
// conditioned along the valley floor.
func Rosenbrock() *Func {
	return NewObjective(func(x linalg.Vector) float64 {
		v := x.Values()
		sum := 0.0
		for i := 0; i < len(v)-1; i++ {
			a := v[i+1] - v[i]*v[i]
			b := 1 - v[i]
			sum += 100*a*a + b*b
		}
		return sum
	})
}

// Rastrigin returns the heavily multimodal function
// 10n + sum of (x_i^2 - 10*cos(2*pi*x_i)), whose global minimum is the
// origin with value zero surrounded by a regular grid of local minima. A
// local method started far from the origin is expected to get trapped.
func Rastrigin() *Func {
	return NewObjective(func(x linalg.Vector) float64 {
		v := x.Values()
		sum := 10 * float64(len(v))
		for _, xi := range v {
			sum += xi*xi - 10*math.Cos(2*math.Pi*xi)
		}
		return sum
	})
}

// AbsValue returns the function sum of |x_i|, minimized at the origin. Its
// gradient is discontinuous there, which defeats curvature-based methods and
// exercises the derivative-free path.
func AbsValue() *Func {
	return NewObjective(func(x linalg.Vector) float64 {
		sum := 0.0
		for _, v := range x.Values() {
			sum += math.Abs(v)
		}
		return sum
	})
}
