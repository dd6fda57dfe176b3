package arima

import "errors"

var (
	// ErrModelFit indicates the parameter optimization failed; fitting a
	// model is not guaranteed to succeed. The error message carries the
	// iteration context of the failed run.
	ErrModelFit = errors.New("arima: model fit failed")
	// ErrInsufficientData indicates the series is too short for the
	// requested model order.
	ErrInsufficientData = errors.New("arima: insufficient data points for the specified order")
	// ErrNotFitted indicates the model has not been successfully fitted.
	ErrNotFitted = errors.New("arima: model must be fitted first")
	// ErrInvalidHorizon indicates a non-positive forecast horizon.
	ErrInvalidHorizon = errors.New("arima: forecast horizon must be positive")
	// ErrInvalidConfidenceLevel indicates an alpha outside the open
	// interval (0, 1).
	ErrInvalidConfidenceLevel = errors.New("arima: confidence level alpha must be in (0, 1)")
)
