package arima

import (
	"math"

	"github.com/statforge/tsmodel/linalg"
	"github.com/statforge/tsmodel/optimize"
)

func nan() float64 { return math.NaN() }

// cssFunc builds the conditional-sum-of-squares function for an ARMA(p,q)
// process over the (already differenced) observations y. The parameter
// vector is laid out as [phi_1..phi_p, theta_1..theta_q, intercept]. The
// returned closure is pure; counting happens in the optimize.Objective
// wrapper that each fit owns.
func cssFunc(y []float64, p, q int) func(linalg.Vector) float64 {
	return func(params linalg.Vector) float64 {
		v := params.Values()
		phi := v[:p]
		theta := v[p : p+q]
		c := v[p+q]

		residuals := make([]float64, len(y))
		start := p
		if q > start {
			start = q
		}

		sse := 0.0
		for t := start; t < len(y); t++ {
			pred := c
			for i := 0; i < p; i++ {
				pred += phi[i] * (y[t-i-1] - c)
			}
			for i := 0; i < q; i++ {
				pred += theta[i] * residuals[t-i-1]
			}
			residuals[t] = y[t] - pred
			sse += residuals[t] * residuals[t]
		}
		return sse
	}
}

// cssResiduals recomputes residuals and one-step-ahead predictions on the
// differenced scale for the fitted parameters. Observations before the
// recursion start are predicted by the intercept alone.
func cssResiduals(y []float64, phi, theta []float64, c float64) (residuals, fitted []float64) {
	p, q := len(phi), len(theta)
	start := p
	if q > start {
		start = q
	}

	residuals = make([]float64, len(y))
	fitted = make([]float64, len(y))
	for t := 0; t < len(y); t++ {
		if t < start {
			fitted[t] = c
			residuals[t] = y[t] - c
			continue
		}
		pred := c
		for i := 0; i < p; i++ {
			pred += phi[i] * (y[t-i-1] - c)
		}
		for i := 0; i < q; i++ {
			pred += theta[i] * residuals[t-i-1]
		}
		fitted[t] = pred
		residuals[t] = y[t] - pred
	}
	return residuals, fitted
}

// paramBounds boxes the AR and MA coefficients inside the unit interval for
// stationarity and invertibility; the intercept is left free.
func paramBounds(p, q int) []optimize.Bound {
	const coefLimit = 0.99
	bounds := make([]optimize.Bound, p+q+1)
	for i := 0; i < p+q; i++ {
		bounds[i] = optimize.Bound{Lower: -coefLimit, Upper: coefLimit}
	}
	bounds[p+q] = optimize.Bound{Lower: nan(), Upper: nan()}
	return bounds
}
