package optimize

import (
	"math"

	"github.com/statforge/tsmodel/linalg"
)

// Finite-difference step factors. Central differences balance truncation and
// rounding error with a step proportional to the cube root (gradient) or
// fourth root (Hessian) of machine epsilon.
const machineEpsilon = 2.220446049250313e-16

var (
	gradStepFactor = math.Cbrt(machineEpsilon)
	hessStepFactor = math.Pow(machineEpsilon, 0.25)
)

// Gradient estimates the gradient of the objective at x by central finite
// differences. Every probe goes through obj.At and is therefore counted.
func Gradient(obj Objective, x linalg.Vector) linalg.Vector {
	vals := x.Values()
	g := make([]float64, len(vals))
	for i := range vals {
		h := gradStepFactor * math.Max(math.Abs(vals[i]), 1)
		fwd := perturbed(vals, i, h)
		bwd := perturbed(vals, i, -h)
		g[i] = (obj.At(fwd) - obj.At(bwd)) / (2 * h)
	}
	return linalg.NewVector(g...)
}

// Hessian estimates the matrix of second derivatives of the objective at x
// by central finite differences. The result is symmetric by construction.
// Every probe goes through obj.At and is therefore counted.
func Hessian(obj Objective, x linalg.Vector) (*linalg.Matrix, error) {
	vals := x.Values()
	n := len(vals)
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = hessStepFactor * math.Max(math.Abs(vals[i]), 1)
	}

	fx := obj.At(linalg.NewVector(vals...))
	b := linalg.NewBuilder(n)
	for i := 0; i < n; i++ {
		fp := obj.At(perturbed(vals, i, steps[i]))
		fm := obj.At(perturbed(vals, i, -steps[i]))
		b.Set(i, i, (fp-2*fx+fm)/(steps[i]*steps[i]))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fpp := obj.At(perturbed2(vals, i, steps[i], j, steps[j]))
			fpm := obj.At(perturbed2(vals, i, steps[i], j, -steps[j]))
			fmp := obj.At(perturbed2(vals, i, -steps[i], j, steps[j]))
			fmm := obj.At(perturbed2(vals, i, -steps[i], j, -steps[j]))
			hij := (fpp - fpm - fmp + fmm) / (4 * steps[i] * steps[j])
			b.Set(i, j, hij)
			b.Set(j, i, hij)
		}
	}
	return b.Build()
}

func perturbed(vals []float64, i int, h float64) linalg.Vector {
	p := make([]float64, len(vals))
	copy(p, vals)
	p[i] += h
	return linalg.NewVector(p...)
}

func perturbed2(vals []float64, i int, hi float64, j int, hj float64) linalg.Vector {
	p := make([]float64, len(vals))
	copy(p, vals)
	p[i] += hi
	p[j] += hj
	return linalg.NewVector(p...)
}
