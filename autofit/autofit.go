package autofit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/statforge/tsmodel/arima"
	"github.com/statforge/tsmodel/stats"
	"github.com/statforge/tsmodel/timeseries"
)

// ErrNoModel reports that no candidate order produced a usable fit.
var ErrNoModel = errors.New("autofit: no candidate model could be fitted")

// Criterion selects the information criterion that ranks candidate models.
type Criterion string

const (
	AIC  Criterion = "aic"
	AICc Criterion = "aicc"
	BIC  Criterion = "bic"
)

// Config holds the search options.
type Config struct {
	MaxP int // Maximum AR order (default: 5)
	MaxD int // Maximum differencing order (default: 2)
	MaxQ int // Maximum MA order (default: 5)
	// Criterion ranks candidates. Empty selects AICc, which guards against
	// overfitting on the short series typical of this search.
	Criterion Criterion
	// Parallelism bounds concurrent candidate fits. Zero selects GOMAXPROCS.
	Parallelism int
	// Model carries per-candidate fitting options.
	Model arima.Config
	// Logger receives per-candidate diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		MaxP:      5,
		MaxD:      2,
		MaxQ:      5,
		Criterion: AICc,
	}
}

// Result describes the outcome of a search.
type Result struct {
	Model *arima.Model
	Order arima.Order
	// Score is the winning model's value under the configured criterion.
	Score float64
	// Evaluated counts candidate orders that produced a fit; Failed counts
	// those that did not.
	Evaluated int
	Failed    int
}

// Search fits every ARIMA(p, d, q) candidate on the grid and returns the one
// with the best information criterion. The differencing order d is estimated
// from the series once, so the grid spans only (p, q). Candidates are fitted
// concurrently; a candidate that fails to fit is skipped rather than aborting
// the search, but cancellation of ctx stops everything.
func Search(ctx context.Context, series *timeseries.Series, cfg Config) (*Result, error) {
	def := DefaultConfig()
	if cfg.MaxP < 0 || cfg.MaxQ < 0 || cfg.MaxD < 0 {
		return nil, fmt.Errorf("%w: negative order bound", ErrNoModel)
	}
	if cfg.MaxP == 0 && cfg.MaxQ == 0 {
		cfg.MaxP, cfg.MaxQ = def.MaxP, def.MaxQ
	}
	if cfg.MaxD == 0 {
		cfg.MaxD = def.MaxD
	}
	if cfg.Criterion == "" {
		cfg.Criterion = def.Criterion
	}
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	d := stats.NDiffs(series, cfg.MaxD)
	logger.Info("starting order search",
		zap.Int("d", d),
		zap.Int("max_p", cfg.MaxP),
		zap.Int("max_q", cfg.MaxQ),
		zap.String("criterion", string(cfg.Criterion)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	var mu sync.Mutex
	best := &Result{Score: math.Inf(1)}

	for p := 0; p <= cfg.MaxP; p++ {
		for q := 0; q <= cfg.MaxQ; q++ {
			p, q := p, q
			g.Go(func() error {
				model := arima.NewWithConfig(p, d, q, cfg.Model)
				err := model.Fit(ctx, series)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if ctx.Err() != nil {
						return err
					}
					best.Failed++
					logger.Debug("candidate rejected",
						zap.Int("p", p), zap.Int("d", d), zap.Int("q", q),
						zap.Error(err))
					return nil
				}
				best.Evaluated++

				sc := score(model, cfg.Criterion)
				logger.Debug("candidate fitted",
					zap.Int("p", p), zap.Int("d", d), zap.Int("q", q),
					zap.Float64("score", sc))
				if betterThan(sc, model.Order, best) {
					best.Model = model
					best.Order = model.Order
					best.Score = sc
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("autofit: search aborted: %w", err)
	}
	if best.Model == nil {
		return nil, fmt.Errorf("%w: all %d candidates failed", ErrNoModel, best.Failed)
	}

	logger.Info("order search finished",
		zap.Int("p", best.Order.P),
		zap.Int("d", best.Order.D),
		zap.Int("q", best.Order.Q),
		zap.Float64("score", best.Score),
		zap.Int("evaluated", best.Evaluated),
		zap.Int("failed", best.Failed))
	return best, nil
}

// score reads the configured criterion off a fitted model.
func score(m *arima.Model, c Criterion) float64 {
	switch c {
	case AIC:
		return m.AIC
	case BIC:
		return m.BIC
	default:
		return m.AICc
	}
}

// betterThan prefers the lower score, breaking exact ties in favor of the
// smaller model so the winner does not depend on goroutine scheduling.
func betterThan(score float64, order arima.Order, best *Result) bool {
	if best.Model == nil {
		return !math.IsNaN(score)
	}
	if math.IsNaN(score) {
		return false
	}
	if score != best.Score {
		return score < best.Score
	}
	return order.P+order.Q < best.Order.P+best.Order.Q
}
