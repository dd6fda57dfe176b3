package arima

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statforge/tsmodel/timeseries"
)

// ar1TestSeries generates a deterministic AR(1) sequence around a mean of
// 100 with coefficient phi.
func ar1TestSeries(n int, phi float64) *timeseries.Series {
	values := make([]float64, n)
	values[0] = 100
	for i := 1; i < n; i++ {
		innovation := float64(i%7-3) / 3
		values[i] = phi*(values[i-1]-100) + 100 + innovation
	}
	return timeseries.New(values)
}

// trendTestSeries generates a slowly rising sequence with periodic noise.
func trendTestSeries(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + float64(i)/10 + float64(i%7-3)/2
	}
	return timeseries.New(values)
}

func TestNewModel(t *testing.T) {
	model := New(2, 1, 1)
	require.Equal(t, 2, model.Order.P)
	require.Equal(t, 1, model.Order.D)
	require.Equal(t, 1, model.Order.Q)
	require.False(t, model.Fitted())
}

func TestFitAR1(t *testing.T) {
	series := ar1TestSeries(200, 0.7)
	model := New(1, 0, 0)

	err := model.Fit(context.Background(), series)
	require.NoError(t, err)
	require.True(t, model.Fitted())
	require.True(t, model.Converged())
	require.Len(t, model.ARCoeffs, 1)

	// The estimate should land near the generating coefficient.
	require.InDelta(t, 0.7, model.ARCoeffs[0], 0.2)
	require.InDelta(t, 100.0, model.Intercept, 2.0)
	require.Positive(t, model.Variance)
	require.Positive(t, model.Evaluations())
}

func TestFitMA1(t *testing.T) {
	n := 200
	innovations := make([]float64, n)
	for i := range innovations {
		innovations[i] = float64(i%7-3) / 3
	}
	values := make([]float64, n)
	values[0] = 100 + innovations[0]
	for i := 1; i < n; i++ {
		values[i] = 100 + innovations[i] + 0.5*innovations[i-1]
	}

	model := New(0, 0, 1)
	err := model.Fit(context.Background(), timeseries.New(values))
	require.NoError(t, err)
	require.Len(t, model.MACoeffs, 1)
	// Correct sign and rough magnitude are the realistic expectation for
	// CSS on a short deterministic sample.
	require.Positive(t, model.MACoeffs[0])
}

func TestFitWithDifferencing(t *testing.T) {
	model := New(1, 1, 0)
	err := model.Fit(context.Background(), trendTestSeries(200))
	require.NoError(t, err)
	require.True(t, model.Fitted())
	require.False(t, math.IsInf(model.AIC, 0))
	require.False(t, math.IsInf(model.BIC, 0))
}

func TestFitWhiteNoise(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 50 + float64(i%9-4)/4
	}
	model := New(0, 0, 0)
	err := model.Fit(context.Background(), timeseries.New(values))
	require.NoError(t, err)
	require.InDelta(t, 50.0, model.Intercept, 0.5)
}

func TestFitInsufficientData(t *testing.T) {
	model := New(2, 1, 2)
	err := model.Fit(context.Background(), timeseries.New([]float64{1, 2, 3, 4, 5}))
	require.ErrorIs(t, err, ErrInsufficientData)
	require.False(t, model.Fitted())
}

func TestFitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := New(1, 0, 1)
	err := model.Fit(ctx, ar1TestSeries(200, 0.5))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrModelFit)
	require.False(t, model.Fitted())
}

func TestPredictionErrorsIdentity(t *testing.T) {
	for _, order := range []Order{{1, 0, 0}, {1, 1, 0}, {0, 1, 1}, {2, 0, 1}} {
		model := New(order.P, order.D, order.Q)
		err := model.Fit(context.Background(), trendTestSeries(150))
		require.NoError(t, err)

		observed := model.TimeSeries()
		fitted := model.FittedSeries()
		errs := model.PredictionErrors()
		require.Equal(t, observed.Len(), fitted.Len())
		require.Equal(t, observed.Len(), errs.Len())

		want, err := observed.Minus(fitted)
		require.NoError(t, err)
		require.Equal(t, want.Values(), errs.Values())
	}
}

func TestFittedSeriesCached(t *testing.T) {
	model := New(1, 0, 0)
	require.NoError(t, model.Fit(context.Background(), ar1TestSeries(120, 0.6)))

	// Same snapshot every call.
	require.Same(t, model.FittedSeries(), model.FittedSeries())
}

func TestUnfittedAccessors(t *testing.T) {
	model := New(1, 0, 0)
	require.Nil(t, model.TimeSeries())
	require.Nil(t, model.FittedSeries())
	require.Nil(t, model.PredictionErrors())
	require.Nil(t, model.Residuals())
	require.Nil(t, model.Summary())

	_, err := model.Forecast(5, 0.05)
	require.ErrorIs(t, err, ErrNotFitted)
}

func TestStdErrors(t *testing.T) {
	model := New(1, 0, 0)
	require.NoError(t, model.Fit(context.Background(), ar1TestSeries(200, 0.7)))

	// One per AR coefficient plus the intercept.
	require.Len(t, model.StdErrors, 2)
	for _, se := range model.StdErrors {
		if !math.IsNaN(se) {
			require.Positive(t, se)
		}
	}
}

func TestInformationCriteria(t *testing.T) {
	series := ar1TestSeries(200, 0.7)

	simple := New(1, 0, 0)
	require.NoError(t, simple.Fit(context.Background(), series))

	rich := New(3, 0, 2)
	require.NoError(t, rich.Fit(context.Background(), series))

	// AICc penalizes the extra parameters harder than AIC.
	require.Greater(t, rich.AICc-rich.AIC, simple.AICc-simple.AIC)
	// BIC exceeds AIC for any sample this large.
	require.Greater(t, simple.BIC, simple.AIC)
}

func TestSummary(t *testing.T) {
	model := New(1, 0, 1)
	require.NoError(t, model.Fit(context.Background(), ar1TestSeries(200, 0.7)))

	s := model.Summary()
	require.NotNil(t, s)
	require.Equal(t, model.Order, s.Order)
	require.Equal(t, 200, s.NObs)
	require.NotNil(t, s.LjungBox)
	require.Equal(t, model.Converged(), s.Converged)
}

func TestMaxIterationsStillUsable(t *testing.T) {
	model := NewWithConfig(2, 0, 2, Config{Tolerance: 1e-14, MaxIterations: 2})
	err := model.Fit(context.Background(), ar1TestSeries(200, 0.7))

	// Budget exhaustion is not a fit error, but the model must report
	// that it did not converge.
	require.NoError(t, err)
	require.True(t, model.Fitted())
	require.False(t, model.Converged())
	require.Equal(t, 2, model.Iterations())
}
