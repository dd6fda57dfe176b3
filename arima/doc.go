// Package arima implements AutoRegressive Integrated Moving Average models
// fitted by numerical minimization of the conditional sum of squares.
//
// An ARIMA(p,d,q) model combines:
//   - AR(p): an autoregressive component with p lags
//   - I(d): differencing of order d
//   - MA(q): a moving average component with q lags
//
// # Fitting
//
// Fitting delegates to the optimize package: the model builds an objective
// closing over the differenced observations and a candidate parameter
// vector, seeds it with Yule-Walker estimates, and installs the optimizer's
// best point. A fit can genuinely fail (non-finite objective, cancelled
// context); it can also stop on its iteration budget, which is a usable but
// non-converged outcome reported by Converged.
//
//	model := arima.New(1, 1, 0)
//	if err := model.Fit(ctx, series); err != nil {
//	    // ErrModelFit or cancellation
//	}
//	fc, err := model.Forecast(10, 0.05)
//
// # Fitted values and residuals
//
// FittedSeries holds the in-sample one-step-ahead predictions, computed
// once at fit time. PredictionErrors is always the observed series minus
// the fitted series. Coefficient standard errors come from the curvature
// of the objective at the optimum, inverted through the linalg package.
//
// # Forecasting
//
// Forecast produces point forecasts with (1-alpha) confidence bounds whose
// widths grow with the horizon according to the psi-weight expansion of the
// fitted process. ForecastDefault uses the conventional alpha of 0.05.
//
// # Model selection
//
// AIC, AICc and BIC are computed at fit time; lower is better. For
// automatic order selection see the autofit package.
package arima
