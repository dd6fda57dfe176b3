// Package autofit implements automatic ARIMA order selection.
//
// Search estimates the differencing order once with repeated KPSS tests,
// then fits every (p, q) candidate on a bounded grid and keeps the model with
// the best information criterion. Candidate fits are independent, so the grid
// is evaluated concurrently up to a configurable parallelism.
//
// Example:
//
//	result, err := autofit.Search(ctx, series, autofit.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fc, err := result.Model.ForecastDefault(12)
package autofit
