package arima

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statforge/tsmodel/timeseries"
)

func fitAR1Model(t *testing.T) *Model {
	t.Helper()
	model := New(1, 0, 0)
	require.NoError(t, model.Fit(context.Background(), ar1TestSeries(200, 0.7)))
	return model
}

func TestForecastShape(t *testing.T) {
	model := fitAR1Model(t)

	fc, err := model.Forecast(10, 0.05)
	require.NoError(t, err)
	require.Equal(t, 10, fc.Steps())
	require.Equal(t, 10, fc.PointForecasts().Len())
	require.Equal(t, 10, fc.LowerBounds().Len())
	require.Equal(t, 10, fc.UpperBounds().Len())
	require.Equal(t, 0.05, fc.Alpha())
}

func TestForecastInvalidHorizon(t *testing.T) {
	model := fitAR1Model(t)

	for _, steps := range []int{0, -1, -10} {
		_, err := model.Forecast(steps, 0.05)
		require.ErrorIs(t, err, ErrInvalidHorizon)
	}
}

func TestForecastInvalidAlpha(t *testing.T) {
	model := fitAR1Model(t)

	for _, alpha := range []float64{0, 1, -0.1, 1.5} {
		_, err := model.Forecast(10, alpha)
		require.ErrorIs(t, err, ErrInvalidConfidenceLevel)
	}
}

func TestForecastBoundsBracketPoints(t *testing.T) {
	model := fitAR1Model(t)

	fc, err := model.Forecast(20, 0.05)
	require.NoError(t, err)

	points := fc.PointForecasts().Values()
	lower := fc.LowerBounds().Values()
	upper := fc.UpperBounds().Values()
	for h := range points {
		require.Less(t, lower[h], points[h])
		require.Greater(t, upper[h], points[h])
	}
}

func TestForecastIntervalsWiden(t *testing.T) {
	model := fitAR1Model(t)

	fc, err := model.Forecast(20, 0.05)
	require.NoError(t, err)

	lower := fc.LowerBounds().Values()
	upper := fc.UpperBounds().Values()
	prev := upper[0] - lower[0]
	require.Positive(t, prev)
	for h := 1; h < 20; h++ {
		width := upper[h] - lower[h]
		require.GreaterOrEqual(t, width, prev)
		prev = width
	}
}

func TestForecastNarrowerAtHigherAlpha(t *testing.T) {
	model := fitAR1Model(t)

	wide, err := model.Forecast(5, 0.01)
	require.NoError(t, err)
	narrow, err := model.Forecast(5, 0.20)
	require.NoError(t, err)

	for h := 0; h < 5; h++ {
		wWidth := wide.UpperBounds().Values()[h] - wide.LowerBounds().Values()[h]
		nWidth := narrow.UpperBounds().Values()[h] - narrow.LowerBounds().Values()[h]
		require.Greater(t, wWidth, nWidth)
	}
}

func TestForecastReversionToMean(t *testing.T) {
	model := fitAR1Model(t)

	fc, err := model.Forecast(100, 0.05)
	require.NoError(t, err)

	// A stationary AR(1) forecast converges toward the process mean.
	points := fc.PointForecasts().Values()
	require.InDelta(t, model.Intercept, points[99], 1.0)
}

func TestForecastIntegratedTrend(t *testing.T) {
	model := New(1, 1, 0)
	require.NoError(t, model.Fit(context.Background(), trendTestSeries(200)))

	fc, err := model.Forecast(10, 0.05)
	require.NoError(t, err)

	// The series rises by roughly 0.1 per step, so a differenced model
	// should forecast a continuation of the trend.
	points := fc.PointForecasts().Values()
	last := model.TimeSeries().Values()[199]
	require.Greater(t, points[9], last)
}

func TestForecastTwiceDifferenced(t *testing.T) {
	// A quadratic series has a constant second difference, so an
	// ARIMA(0,2,0) fit recovers the exact continuation: each
	// integration pass must be seeded with the last value of the
	// corresponding differenced series, not a raw past observation.
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i * i)
	}

	model := New(0, 2, 0)
	require.NoError(t, model.Fit(context.Background(), timeseries.New(values)))
	require.InDelta(t, 2.0, model.Intercept, 1e-4)

	fc, err := model.Forecast(3, 0.05)
	require.NoError(t, err)

	points := fc.PointForecasts().Values()
	require.InDelta(t, 2500.0, points[0], 1e-2) // 50^2
	require.InDelta(t, 2601.0, points[1], 1e-2) // 51^2
	require.InDelta(t, 2704.0, points[2], 1e-2) // 52^2
}

func TestForecastDefault(t *testing.T) {
	model := fitAR1Model(t)

	def, err := model.ForecastDefault(10)
	require.NoError(t, err)
	explicit, err := model.Forecast(10, 0.05)
	require.NoError(t, err)

	require.Equal(t, explicit.PointForecasts().Values(), def.PointForecasts().Values())
	require.Equal(t, explicit.LowerBounds().Values(), def.LowerBounds().Values())
	require.Equal(t, explicit.UpperBounds().Values(), def.UpperBounds().Values())
	require.Equal(t, 0.05, def.Alpha())
}
