// Package betafn verifies the special package against golden tables of
// reference values. Tables are YAML files evaluated concurrently by a
// Checker.
package betafn

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ieee0824/betafn-go/internal/mathutil"
	"github.com/ieee0824/betafn-go/special"
)

// Version is the betafn release.
const Version = "0.1.0"

type evaluator func(c Case, cfg special.Config) (float64, error)

var evaluators = map[string]evaluator{
	FuncLogBeta: func(c Case, _ special.Config) (float64, error) {
		return special.LogBeta(c.A, c.B), nil
	},
	FuncBeta: func(c Case, _ special.Config) (float64, error) {
		return special.Beta(c.A, c.B), nil
	},
	FuncRegularizedBeta: func(c Case, cfg special.Config) (float64, error) {
		return special.RegularizedBetaWith(c.X, c.A, c.B, cfg)
	},
	FuncRegularizedBetaUpper: func(c Case, cfg special.Config) (float64, error) {
		return special.RegularizedBetaComplementWith(c.X, c.A, c.B, cfg)
	},
}

// Checker evaluates golden tables.
type Checker struct {
	Config  special.Config
	Workers int // concurrent evaluations; <= 0 means GOMAXPROCS
	Logger  *zap.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithConfig sets the continued-fraction parameters.
func WithConfig(cfg special.Config) Option {
	return func(c *Checker) {
		c.Config = cfg
	}
}

// WithWorkers bounds the number of rows evaluated at once.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		c.Workers = n
	}
}

// WithLogger sets the logger that receives per-row failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// NewChecker creates a Checker with default parameters and a no-op logger.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		Config: special.DefaultConfig(),
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the outcome of one Case.
type Result struct {
	Case Case
	Got  float64
	ULPs float64 // distance from Want in units in the last place
	Err  error   // evaluation error, e.g. a *special.ConvergenceError
	Pass bool
}

// Report collects the results of a table in row order.
type Report struct {
	Results []Result
	Failed  int
}

// Passed reports whether every row passed.
func (r *Report) Passed() bool {
	return r.Failed == 0
}

// Check evaluates a single case.
func (c *Checker) Check(tc Case) Result {
	res := Result{Case: tc}
	eval, ok := evaluators[tc.Func]
	if !ok {
		res.Err = errUnknownFunc(tc.Func)
		return res
	}
	res.Got, res.Err = eval(tc, c.Config)
	if res.Err != nil {
		return res
	}
	res.ULPs = mathutil.ULPDistance(tc.Want, res.Got)
	res.Pass = within(tc, res.Got, res.ULPs)
	return res
}

func within(tc Case, got, ulps float64) bool {
	if tc.ULPs == 0 && tc.Tol == 0 {
		return ulps == 0
	}
	if tc.ULPs > 0 && ulps <= tc.ULPs {
		return true
	}
	return tc.Tol > 0 && mathutil.RelErr(tc.Want, got) <= tc.Tol
}

// Run evaluates every row of t concurrently. The returned error is non-nil
// only when ctx is cancelled; failing rows are reported in the Report and
// logged at warn level.
func (c *Checker) Run(ctx context.Context, t *Table) (*Report, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(t.Cases))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tc := range t.Cases {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = c.Check(tc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Results: results}
	for i, res := range results {
		if res.Pass {
			continue
		}
		rep.Failed++
		fields := []zap.Field{
			zap.Int("row", i),
			zap.String("case", res.Case.Label()),
			zap.Float64("want", res.Case.Want),
			zap.Float64("got", res.Got),
		}
		if res.Err != nil {
			fields = append(fields, zap.Error(res.Err))
		} else {
			fields = append(fields, zap.Float64("ulps", res.ULPs))
		}
		c.Logger.Warn("case failed", fields...)
	}
	c.Logger.Debug("table checked",
		zap.Int("cases", len(results)),
		zap.Int("failed", rep.Failed),
		zap.Int("workers", workers))
	return rep, nil
}
