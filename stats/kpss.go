package stats

import (
	"math"

	"github.com/statforge/tsmodel/timeseries"
)

// KPSSRegression selects the null hypothesis of the KPSS test: stationarity
// around a constant level, or around a linear trend.
type KPSSRegression int

const (
	KPSSLevel KPSSRegression = iota
	KPSSTrend
)

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test. The null
// hypothesis is that the series is stationary, so a p-value below 0.05
// rejects stationarity. A non-positive lags selects the conventional
// ceil(12*(n/100)^0.25) truncation for the long-run variance estimate.
// Returns nil when the series is too short to test.
func KPSS(series *timeseries.Series, regression KPSSRegression, lags int) *KPSSResult {
	n := series.Len()
	if n < 10 {
		return nil
	}
	if lags <= 0 {
		lags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}

	residuals := detrend(series, regression)

	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Newey-West long-run variance with Bartlett weights.
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)
	for l := 1; l <= lags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		s2 += 2 * (1 - float64(l)/float64(lags+1)) * cov
	}
	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	stat := etaSq / (float64(n) * float64(n) * s2)

	p := kpssPValue(stat, regression)
	return &KPSSResult{
		Statistic:    stat,
		PValue:       p,
		Lags:         lags,
		IsStationary: p >= 0.05,
	}
}

// detrend removes the fitted level or linear trend, leaving the residuals
// whose partial sums the statistic is built from.
func detrend(series *timeseries.Series, regression KPSSRegression) []float64 {
	vals := series.Values()
	n := len(vals)
	residuals := make([]float64, n)

	if regression == KPSSTrend {
		sumT, sumY, sumTY, sumT2 := 0.0, 0.0, 0.0, 0.0
		for i, v := range vals {
			t := float64(i)
			sumT += t
			sumY += v
			sumTY += t * v
			sumT2 += t * t
		}
		nf := float64(n)
		b := (nf*sumTY - sumT*sumY) / (nf*sumT2 - sumT*sumT)
		a := (sumY - b*sumT) / nf
		for i, v := range vals {
			residuals[i] = v - a - b*float64(i)
		}
		return residuals
	}

	mean := series.Mean()
	for i, v := range vals {
		residuals[i] = v - mean
	}
	return residuals
}

// kpssPValue interpolates the p-value from the published critical values of
// the KPSS distribution.
func kpssPValue(stat float64, regression KPSSRegression) float64 {
	if regression == KPSSTrend {
		switch {
		case stat > 0.216:
			return 0.01
		case stat > 0.146:
			return 0.05
		case stat > 0.119:
			return 0.10
		default:
			return 0.10 + (0.119-stat)*2
		}
	}
	switch {
	case stat > 0.739:
		return 0.01
	case stat > 0.463:
		return 0.05
	case stat > 0.347:
		return 0.10
	default:
		return 0.10 + (0.347-stat)*0.5
	}
}
