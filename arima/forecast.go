package arima

import "github.com/statforge/tsmodel/timeseries"

// Forecast is an immutable snapshot of point forecasts and their confidence
// bounds, tied to the horizon and confidence level it was produced with.
type Forecast struct {
	points *timeseries.Series
	lower  *timeseries.Series
	upper  *timeseries.Series
	alpha  float64
	steps  int
}

// PointForecasts returns the point forecasts, one per step ahead.
func (f *Forecast) PointForecasts() *timeseries.Series {
	return f.points
}

// LowerBounds returns the lower confidence bounds of the forecasts.
func (f *Forecast) LowerBounds() *timeseries.Series {
	return f.lower
}

// UpperBounds returns the upper confidence bounds of the forecasts.
func (f *Forecast) UpperBounds() *timeseries.Series {
	return f.upper
}

// Alpha returns the significance level the bounds were computed at; the
// bounds cover the (1 - alpha) confidence interval.
func (f *Forecast) Alpha() float64 {
	return f.alpha
}

// Steps returns the forecast horizon.
func (f *Forecast) Steps() int {
	return f.steps
}
