package stats

import "github.com/statforge/tsmodel/timeseries"

// NDiffs estimates the number of differences needed to make the series
// stationary, up to maxD. Each level is judged by the KPSS test around a
// constant; differencing stops as soon as the test no longer rejects
// stationarity, or when the series becomes too short to test.
func NDiffs(series *timeseries.Series, maxD int) int {
	current := series
	for d := 0; d < maxD; d++ {
		res := KPSS(current, KPSSLevel, 0)
		if res == nil || res.IsStationary {
			return d
		}
		current = current.Diff()
	}
	return maxD
}
