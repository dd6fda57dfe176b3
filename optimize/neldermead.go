package optimize

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/statforge/tsmodel/linalg"
)

// Standard Nelder-Mead coefficients.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

// Initial simplex offsets, following the usual fminsearch convention.
const (
	simplexScale     = 0.05
	simplexZeroDelta = 0.00025
)

// Bound restricts one dimension of the search space. A NaN endpoint leaves
// that side unbounded.
type Bound struct {
	Lower float64
	Upper float64
}

// Config holds the recognized minimizer options.
type Config struct {
	// Tolerance is the convergence threshold applied to both the spread of
	// objective values across the simplex and the simplex step norm.
	Tolerance float64
	// MaxIterations bounds the number of iterations. Zero selects the
	// default.
	MaxIterations int
	// MaxEvaluations bounds the number of objective evaluations. Zero
	// leaves the count limited only by MaxIterations. The budget is
	// checked between iterations, so a single iteration may overshoot it
	// by up to n+2 evaluations (a shrink step re-evaluates every vertex).
	MaxEvaluations int
	// Bounds optionally boxes the search, one entry per dimension.
	Bounds []Bound
	// Logger receives per-iteration diagnostics at debug level. Nil
	// disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default minimizer configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:     1e-8,
		MaxIterations: 1000,
	}
}

// Minimizer is a derivative-free Nelder-Mead simplex minimizer. A Minimizer
// is stateless between runs and may be reused, but each run must own its
// objective instance.
type Minimizer struct {
	cfg    Config
	logger *zap.Logger
}

// NewMinimizer creates a minimizer with the given configuration.
func NewMinimizer(cfg Config) *Minimizer {
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
	return &Minimizer{cfg: cfg, logger: logger}
}

// vertex is one corner of the simplex.
type vertex struct {
	x    []float64
	f    float64
	norm float64
}

// Minimize runs the simplex search from x0. The terminal status is recorded
// on the returned Result; Failed and Cancelled additionally return an error.
// MaxIterationsExceeded returns the best point found with a nil error, which
// the caller must distinguish from Converged via the Status field.
func (m *Minimizer) Minimize(ctx context.Context, obj Objective, x0 linalg.Vector) (*Result, error) {
	n := x0.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty initial point", ErrInvalidStartPoint)
	}
	if len(m.cfg.Bounds) > 0 && len(m.cfg.Bounds) != n {
		return nil, fmt.Errorf("%w: %d bounds for %d dimensions", ErrInvalidStartPoint, len(m.cfg.Bounds), n)
	}

	startEvals := obj.Evaluations()
	evalsUsed := func() int { return obj.Evaluations() - startEvals }

	eval := func(x []float64) (float64, bool) {
		f := obj.At(linalg.NewVector(x...))
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}

	// Initial simplex: x0 plus one perturbed vertex per dimension.
	simplex := make([]vertex, n+1)
	start := m.clamp(x0.Values())
	for i := range simplex {
		x := make([]float64, n)
		copy(x, start)
		if i > 0 {
			d := i - 1
			if x[d] != 0 {
				x[d] *= 1 + simplexScale
			} else {
				x[d] = simplexZeroDelta
			}
			x = m.clamp(x)
		}
		f, ok := eval(x)
		if !ok {
			return m.failed(simplex[:i], x, 0, evalsUsed()),
				fmt.Errorf("%w: at initial simplex vertex %d", ErrObjectiveEvaluation, i)
		}
		simplex[i] = vertex{x: x, f: f, norm: norm(x)}
	}
	rankVertices(simplex)

	prevBest := simplex[0].f
	status := Iterating
	iter := 0

	for ; iter < m.cfg.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			res := m.result(simplex, Cancelled, iter, evalsUsed())
			return res, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		default:
		}

		if m.converged(simplex, prevBest) {
			status = Converged
			break
		}
		if m.cfg.MaxEvaluations > 0 && evalsUsed() >= m.cfg.MaxEvaluations {
			status = MaxIterationsExceeded
			break
		}
		prevBest = simplex[0].f

		// Centroid of all vertices except the worst.
		centroid := make([]float64, n)
		for _, v := range simplex[:n] {
			for j, xj := range v.x {
				centroid[j] += xj
			}
		}
		for j := range centroid {
			centroid[j] /= float64(n)
		}

		worst := simplex[n]
		reflected := m.clamp(step(centroid, worst.x, nmReflect))
		fr, ok := eval(reflected)
		if !ok {
			res := m.result(simplex, Failed, iter, evalsUsed())
			return res, fmt.Errorf("%w: after %d iterations", ErrObjectiveEvaluation, iter)
		}

		switch {
		case fr < simplex[0].f:
			// Try to expand past the reflection.
			expanded := m.clamp(step(centroid, worst.x, nmExpand))
			fe, ok := eval(expanded)
			if !ok {
				res := m.result(simplex, Failed, iter, evalsUsed())
				return res, fmt.Errorf("%w: after %d iterations", ErrObjectiveEvaluation, iter)
			}
			if fe < fr {
				simplex[n] = vertex{x: expanded, f: fe, norm: norm(expanded)}
			} else {
				simplex[n] = vertex{x: reflected, f: fr, norm: norm(reflected)}
			}
		case fr < simplex[n-1].f:
			simplex[n] = vertex{x: reflected, f: fr, norm: norm(reflected)}
		default:
			// Contract toward the better of the worst vertex and its
			// reflection.
			contractOutside := fr < worst.f
			var contracted []float64
			if contractOutside {
				contracted = m.clamp(step(centroid, reflected, -nmContract))
			} else {
				contracted = m.clamp(step(centroid, worst.x, -nmContract))
			}
			fc, ok := eval(contracted)
			if !ok {
				res := m.result(simplex, Failed, iter, evalsUsed())
				return res, fmt.Errorf("%w: after %d iterations", ErrObjectiveEvaluation, iter)
			}
			better := worst.f
			if contractOutside {
				better = fr
			}
			if fc <= better {
				simplex[n] = vertex{x: contracted, f: fc, norm: norm(contracted)}
			} else {
				// Shrink every vertex toward the best.
				for i := 1; i <= n; i++ {
					x := make([]float64, n)
					for j := range x {
						x[j] = simplex[0].x[j] + nmShrink*(simplex[i].x[j]-simplex[0].x[j])
					}
					x = m.clamp(x)
					f, ok := eval(x)
					if !ok {
						res := m.result(simplex, Failed, iter, evalsUsed())
						return res, fmt.Errorf("%w: after %d iterations", ErrObjectiveEvaluation, iter)
					}
					simplex[i] = vertex{x: x, f: f, norm: norm(x)}
				}
			}
		}

		rankVertices(simplex)
		m.logger.Debug("simplex iteration",
			zap.Int("iteration", iter),
			zap.Float64("best", simplex[0].f),
			zap.Float64("spread", simplex[n].f-simplex[0].f),
			zap.Int("evaluations", evalsUsed()))
	}

	if status == Iterating {
		if m.converged(simplex, prevBest) {
			status = Converged
		} else {
			status = MaxIterationsExceeded
		}
	}
	return m.result(simplex, status, iter, evalsUsed()), nil
}

// converged reports whether the simplex satisfies either stopping rule: the
// spread of objective values across the simplex (which bounds the change
// between successive best values) or the largest vertex-to-best distance is
// below the tolerance.
func (m *Minimizer) converged(simplex []vertex, prevBest float64) bool {
	n := len(simplex) - 1
	spread := math.Abs(simplex[n].f - simplex[0].f)
	if spread < m.cfg.Tolerance && math.Abs(prevBest-simplex[0].f) < m.cfg.Tolerance {
		return true
	}
	maxDist := 0.0
	for _, v := range simplex[1:] {
		d := 0.0
		for j := range v.x {
			diff := v.x[j] - simplex[0].x[j]
			d += diff * diff
		}
		if d > maxDist {
			maxDist = d
		}
	}
	return math.Sqrt(maxDist) < m.cfg.Tolerance
}

// rankVertices orders the simplex best-first. Equal objective values rank by
// the smaller parameter-vector norm, keeping the ordering deterministic.
func rankVertices(simplex []vertex) {
	sort.SliceStable(simplex, func(i, j int) bool {
		if simplex[i].f != simplex[j].f {
			return simplex[i].f < simplex[j].f
		}
		return simplex[i].norm < simplex[j].norm
	})
}

// step returns centroid + coeff*(centroid - from).
func step(centroid, from []float64, coeff float64) []float64 {
	x := make([]float64, len(centroid))
	for j := range x {
		x[j] = centroid[j] + coeff*(centroid[j]-from[j])
	}
	return x
}

// clamp projects a point into the configured box bounds.
func (m *Minimizer) clamp(x []float64) []float64 {
	if len(m.cfg.Bounds) == 0 {
		return x
	}
	for j, b := range m.cfg.Bounds {
		if !math.IsNaN(b.Lower) && x[j] < b.Lower {
			x[j] = b.Lower
		}
		if !math.IsNaN(b.Upper) && x[j] > b.Upper {
			x[j] = b.Upper
		}
	}
	return x
}

func (m *Minimizer) result(simplex []vertex, status Status, iterations, evaluations int) *Result {
	best := simplex[0]
	return &Result{
		X:           linalg.NewVector(best.x...),
		Value:       best.f,
		Iterations:  iterations,
		Evaluations: evaluations,
		Status:      status,
	}
}

// failed builds a terminal result when the initial simplex itself could not
// be evaluated. The best evaluated vertex is reported when one exists;
// otherwise the offending point is reported with a NaN value.
func (m *Minimizer) failed(evaluated []vertex, at []float64, iterations, evaluations int) *Result {
	if len(evaluated) > 0 {
		rankVertices(evaluated)
		return m.result(evaluated, Failed, iterations, evaluations)
	}
	return &Result{
		X:           linalg.NewVector(at...),
		Value:       math.NaN(),
		Iterations:  iterations,
		Evaluations: evaluations,
		Status:      Failed,
	}
}

func norm(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}
