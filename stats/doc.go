// Package stats provides statistical functions supporting model fitting and
// residual diagnostics.
//
// Autocorrelation analysis:
//   - ACF: autocorrelation function for lags 0..maxLag
//   - PACF: partial autocorrelation via the Durbin-Levinson recursion
//   - YuleWalker: AR coefficient estimates from an autocorrelation sequence
//
// Residual diagnostics:
//   - LjungBox / BoxPierce: portmanteau tests for residual autocorrelation
//   - DurbinWatson: first-order autocorrelation statistic
//
// Distributions:
//   - NormalQuantile / NormalCDF: standard normal inverse CDF and CDF,
//     used for forecast interval multipliers
//
// Model preparation:
//   - KPSS: stationarity test around a constant level or a linear trend
//   - NDiffs: KPSS-driven differencing order for automatic model selection
package stats
