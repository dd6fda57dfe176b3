// Package tsmodel provides ARIMA time series modeling on an immutable linear
// algebra substrate.
//
// The module fits AutoRegressive Integrated Moving Average (ARIMA) models by
// conditional sum of squares, using a derivative-free simplex optimizer, and
// produces point forecasts with confidence intervals. Every layer below the
// model is reusable on its own: the vectors and matrices, the equation
// solver, and the optimizer have no knowledge of time series.
//
// # Quick Start
//
// Fit a model and forecast:
//
//	series := timeseries.New(values)
//	model := arima.New(1, 1, 0)
//	if err := model.Fit(ctx, series); err != nil {
//		log.Fatal(err)
//	}
//	fc, err := model.Forecast(10, 0.05)
//
// Or let the automatic search pick the order:
//
//	result, err := autofit.Search(ctx, series, autofit.DefaultConfig())
//	fc, err := result.Model.ForecastDefault(10)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - linalg: Immutable vectors, matrices, and LU-based equation solving
//   - optimize: Objective functions, numerical derivatives, and a
//     Nelder-Mead minimizer
//   - timeseries: Time series data structures and CSV ingestion
//   - stats: Autocorrelation, residual diagnostics, and distribution
//     functions
//   - arima: ARIMA model fitting and forecasting
//   - autofit: Automatic order selection
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis:
//     Forecasting and Control
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles
//     and Practice
package tsmodel
