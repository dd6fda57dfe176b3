package arima

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/statforge/tsmodel/linalg"
	"github.com/statforge/tsmodel/optimize"
	"github.com/statforge/tsmodel/stats"
	"github.com/statforge/tsmodel/timeseries"
)

// Order represents the ARIMA model order (p, d, q).
type Order struct {
	P int // AR order (number of autoregressive terms)
	D int // Differencing order
	Q int // MA order (number of moving average terms)
}

// Config holds the fitting options of a model.
type Config struct {
	// Tolerance is the optimizer convergence threshold.
	Tolerance float64
	// MaxIterations bounds the optimizer iterations.
	MaxIterations int
	// MaxEvaluations bounds the objective evaluations. Zero leaves the
	// count limited only by MaxIterations.
	MaxEvaluations int
	// Logger receives fit diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default fitting configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:     1e-8,
		MaxIterations: 500,
	}
}

// Model represents an ARIMA model. Create it with New, fit it once with
// Fit, then read fitted values, residuals and forecasts. A fitted model is
// read-only and safe for concurrent use; independent models may be fitted
// in parallel since each fit owns its optimizer run and objective counter.
type Model struct {
	Order     Order
	ARCoeffs  []float64 // AR coefficients (phi)
	MACoeffs  []float64 // MA coefficients (theta)
	Intercept float64
	Variance  float64   // Residual variance
	StdErrors []float64 // Coefficient standard errors, nil when curvature is singular
	AIC       float64
	AICc      float64 // Corrected AIC for small sample sizes
	BIC       float64
	LogLik    float64

	cfg          Config
	logger       *zap.Logger
	fitted       bool
	converged    bool
	iterations   int
	evaluations  int
	data         *timeseries.Series
	diffData     *timeseries.Series
	residuals    []float64 // differenced scale
	fittedSeries *timeseries.Series
}

// New creates a new ARIMA model with the specified order and default
// configuration.
func New(p, d, q int) *Model {
	return NewWithConfig(p, d, q, DefaultConfig())
}

// NewWithConfig creates a new ARIMA model with the specified order and
// fitting configuration.
func NewWithConfig(p, d, q int, cfg Config) *Model {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		Order:  Order{P: p, D: d, Q: q},
		cfg:    cfg,
		logger: logger,
	}
}

// Fit estimates the model parameters from the given series by minimizing
// the conditional sum of squares. A run that exhausts its iteration budget
// still installs the best parameters found; Converged reports which outcome
// occurred. A failed or cancelled optimization leaves the model unfitted.
func (m *Model) Fit(ctx context.Context, series *timeseries.Series) error {
	p, d, q := m.Order.P, m.Order.D, m.Order.Q
	if series.Len() < p+q+d+10 {
		return fmt.Errorf("%w: %d observations for ARIMA(%d,%d,%d)",
			ErrInsufficientData, series.Len(), p, d, q)
	}

	diffed := series
	for i := 0; i < d; i++ {
		diffed = diffed.Diff()
		if diffed.Len() == 0 {
			return fmt.Errorf("%w: differencing produced an empty series", ErrInsufficientData)
		}
	}

	y := diffed.Values()
	obj := optimize.NewObjective(cssFunc(y, p, q))

	minimizer := optimize.NewMinimizer(optimize.Config{
		Tolerance:      m.cfg.Tolerance,
		MaxIterations:  m.cfg.MaxIterations,
		MaxEvaluations: m.cfg.MaxEvaluations,
		Bounds:         paramBounds(p, q),
		Logger:         m.cfg.Logger,
	})

	res, err := minimizer.Minimize(ctx, obj, m.initialParams(diffed))
	if err != nil {
		if res != nil && res.Status == optimize.Cancelled {
			return fmt.Errorf("arima: fit of ARIMA(%d,%d,%d) cancelled: %w", p, d, q, err)
		}
		iterations := 0
		if res != nil {
			iterations = res.Iterations
		}
		return fmt.Errorf("%w: ARIMA(%d,%d,%d) after %d iterations: %w",
			ErrModelFit, p, d, q, iterations, err)
	}

	params := res.X.Values()
	m.ARCoeffs = append([]float64(nil), params[:p]...)
	m.MACoeffs = append([]float64(nil), params[p:p+q]...)
	m.Intercept = params[p+q]
	m.converged = res.Status == optimize.Converged
	m.iterations = res.Iterations
	m.evaluations = res.Evaluations
	m.data = series
	m.diffData = diffed

	m.installFit(y)
	m.estimateStdErrors(obj, res.X)
	m.calculateIC()
	m.fitted = true

	m.logger.Info("arima model fitted",
		zap.Int("p", p), zap.Int("d", d), zap.Int("q", q),
		zap.Bool("converged", m.converged),
		zap.Int("iterations", m.iterations),
		zap.Int("evaluations", m.evaluations),
		zap.Float64("sigma2", m.Variance),
		zap.Float64("aicc", m.AICc))
	return nil
}

// initialParams seeds the optimizer: Yule-Walker estimates for the AR part,
// small positive values for the MA part, the sample mean for the intercept.
func (m *Model) initialParams(diffed *timeseries.Series) linalg.Vector {
	p, q := m.Order.P, m.Order.Q
	params := make([]float64, p+q+1)

	if p > 0 {
		if acf := stats.ACF(diffed, p); acf != nil {
			if phi := stats.YuleWalker(acf, p); phi != nil {
				for i, c := range phi {
					params[i] = math.Max(-0.9, math.Min(0.9, c))
				}
			}
		}
	}
	for i := 0; i < q; i++ {
		params[p+i] = 0.1
	}
	params[p+q] = diffed.Mean()
	return linalg.NewVector(params...)
}

// installFit computes residuals on the differenced scale, the residual
// variance, and the cached one-step-ahead fitted series on the original
// scale.
func (m *Model) installFit(y []float64) {
	p, q, d := m.Order.P, m.Order.Q, m.Order.D
	residuals, _ := cssResiduals(y, m.ARCoeffs, m.MACoeffs, m.Intercept)
	m.residuals = residuals

	start := p
	if q > start {
		start = q
	}
	sse := 0.0
	count := 0
	for t := start; t < len(residuals); t++ {
		sse += residuals[t] * residuals[t]
		count++
	}
	if count > p+q+1 {
		m.Variance = sse / float64(count-p-q-1)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}

	// One-step-ahead predictions on the original scale: the observation
	// minus its residual. The first d observations have no differenced
	// counterpart and predict themselves with zero error.
	observed := m.data.Values()
	fitted := make([]float64, len(observed))
	for t := range observed {
		if t < d {
			fitted[t] = observed[t]
			continue
		}
		fitted[t] = observed[t] - residuals[t-d]
	}
	m.fittedSeries = timeseries.Named(m.data.Name()+"_fitted", fitted)
}

// estimateStdErrors derives coefficient standard errors from the curvature
// of the objective at the optimum. For a sum-of-squares objective the
// parameter covariance is approximately 2*sigma2 times the inverse Hessian.
// A singular curvature matrix degrades to absent standard errors.
func (m *Model) estimateStdErrors(obj optimize.Objective, at linalg.Vector) {
	m.StdErrors = nil
	hess, err := optimize.Hessian(obj, at)
	if err != nil {
		return
	}
	inv, err := linalg.Inverse(hess)
	if err != nil {
		m.logger.Debug("curvature matrix not invertible, skipping standard errors", zap.Error(err))
		return
	}
	cov := inv.ScaledBy(2 * m.Variance)
	diag := cov.Diagonal()
	stdErrs := make([]float64, len(diag))
	for i, v := range diag {
		if v > 0 {
			stdErrs[i] = math.Sqrt(v)
		} else {
			stdErrs[i] = math.NaN()
		}
	}
	m.StdErrors = stdErrs
}

// calculateIC calculates the log-likelihood and information criteria under
// Gaussian errors.
func (m *Model) calculateIC() {
	n := len(m.residuals)
	k := m.Order.P + m.Order.Q + 1

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	kf := float64(k)
	nf := float64(n)
	m.AIC = -2*m.LogLik + 2*kf
	if nf-kf-1 > 0 {
		m.AICc = m.AIC + 2*kf*(kf+1)/(nf-kf-1)
	} else {
		m.AICc = math.Inf(1)
	}
	m.BIC = -2*m.LogLik + kf*math.Log(nf)
}

// Fitted reports whether the model has been successfully fitted.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Converged reports whether the fit converged within its budget. A model
// whose optimizer stopped on the iteration budget is still usable, but the
// caller must treat the parameters as best-found rather than converged.
func (m *Model) Converged() bool {
	return m.converged
}

// Iterations returns the optimizer iteration count of the fit.
func (m *Model) Iterations() int {
	return m.iterations
}

// Evaluations returns the number of objective evaluations used by the fit.
func (m *Model) Evaluations() int {
	return m.evaluations
}

// TimeSeries returns the observed series the model was fitted to.
func (m *Model) TimeSeries() *timeseries.Series {
	if !m.fitted {
		return nil
	}
	return m.data
}

// FittedSeries returns the in-sample one-step-ahead predictions, computed
// once at fit time.
func (m *Model) FittedSeries() *timeseries.Series {
	if !m.fitted {
		return nil
	}
	return m.fittedSeries
}

// PredictionErrors returns the elementwise difference between the observed
// and fitted series. It is recomputed on demand from the two cached series.
func (m *Model) PredictionErrors() *timeseries.Series {
	if !m.fitted {
		return nil
	}
	errs, err := m.data.Minus(m.fittedSeries)
	if err != nil {
		return nil
	}
	return errs
}

// Residuals returns the model residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	out := make([]float64, len(m.residuals))
	copy(out, m.residuals)
	return out
}

// Forecast produces point forecasts for the given number of steps ahead
// with (1 - alpha) confidence bounds.
func (m *Model) Forecast(steps int, alpha float64) (*Forecast, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, steps)
	}
	if alpha <= 0 || alpha >= 1 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidConfidenceLevel, alpha)
	}

	points := m.pointForecasts(steps)
	se := m.forecastStdErrors(steps)
	z := stats.NormalQuantile(1 - alpha/2)

	lower := make([]float64, steps)
	upper := make([]float64, steps)
	for h := 0; h < steps; h++ {
		lower[h] = points[h] - z*se[h]
		upper[h] = points[h] + z*se[h]
	}

	name := m.data.Name()
	return &Forecast{
		points: timeseries.Named(name+"_forecast", points),
		lower:  timeseries.Named(name+"_lower", lower),
		upper:  timeseries.Named(name+"_upper", upper),
		alpha:  alpha,
		steps:  steps,
	}, nil
}

// ForecastDefault produces a forecast at the conventional alpha of 0.05.
func (m *Model) ForecastDefault(steps int) (*Forecast, error) {
	return m.Forecast(steps, 0.05)
}

// pointForecasts runs the ARMA recursion forward on the differenced scale,
// with future residuals at their zero expectation, then integrates back to
// the original scale.
func (m *Model) pointForecasts(steps int) []float64 {
	p, q, d := m.Order.P, m.Order.Q, m.Order.D
	y := m.diffData.Values()
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResiduals[t-i-1]
		}
		extY[t] = pred
	}

	forecasts := extY[n:]
	if d > 0 {
		forecasts = m.integrate(forecasts)
	}
	return forecasts
}

// integrate undoes differencing to return forecasts on the original scale.
// Undoing the k-th difference is a cumulative sum seeded with the last value
// of the (k-1)-times-differenced series, so the seeds are taken from the
// chain of differenced series, innermost level first.
func (m *Model) integrate(forecasts []float64) []float64 {
	d := m.Order.D

	seeds := make([]float64, d)
	s := m.data
	for k := 0; k < d; k++ {
		vals := s.Values()
		seeds[k] = vals[len(vals)-1]
		s = s.Diff()
	}

	result := make([]float64, len(forecasts))
	copy(result, forecasts)
	for k := d - 1; k >= 0; k-- {
		prev := seeds[k]
		for j := range result {
			result[j] += prev
			prev = result[j]
		}
	}
	return result
}

// forecastStdErrors computes the forecast standard error at each horizon
// from the psi weights of the fitted process, cumulated once per
// differencing order to account for integration.
func (m *Model) forecastStdErrors(steps int) []float64 {
	psi := m.psiWeights(steps)
	for i := 0; i < m.Order.D; i++ {
		for j := 1; j < len(psi); j++ {
			psi[j] += psi[j-1]
		}
	}

	se := make([]float64, steps)
	sum := 0.0
	for h := 0; h < steps; h++ {
		sum += psi[h] * psi[h]
		se[h] = math.Sqrt(m.Variance * sum)
	}
	return se
}

// psiWeights expands the fitted ARMA polynomials into the first `steps`
// coefficients of the infinite moving-average representation.
func (m *Model) psiWeights(steps int) []float64 {
	p, q := m.Order.P, m.Order.Q
	psi := make([]float64, steps)
	psi[0] = 1
	for j := 1; j < steps; j++ {
		if j <= q {
			psi[j] = m.MACoeffs[j-1]
		}
		for i := 1; i <= p && i <= j; i++ {
			psi[j] += m.ARCoeffs[i-1] * psi[j-i]
		}
	}
	return psi
}

// Summary holds a snapshot of the fitted model for reporting.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	StdErrors []float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int
	Converged bool
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box test
// of the residuals. It returns nil for an unfitted model.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}
	residSeries := timeseries.New(m.residuals)
	return &Summary{
		Order:     m.Order,
		ARCoeffs:  append([]float64(nil), m.ARCoeffs...),
		MACoeffs:  append([]float64(nil), m.MACoeffs...),
		Intercept: m.Intercept,
		StdErrors: append([]float64(nil), m.StdErrors...),
		Variance:  m.Variance,
		AIC:       m.AIC,
		AICc:      m.AICc,
		BIC:       m.BIC,
		LogLik:    m.LogLik,
		NObs:      m.data.Len(),
		Converged: m.converged,
		LjungBox:  stats.LjungBox(residSeries, 10, m.Order.P+m.Order.Q),
	}
}
