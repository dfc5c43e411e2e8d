package sweep

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/pramcost"
	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/resource"
	"github.com/hupe1980/pramcost/search"
	"github.com/hupe1980/pramcost/symbols"
)

// Point is the outcome of one grid point.
type Point struct {
	N      int
	P      int
	Target rune
	Report model.Report
	// Err is non-nil if generation or evaluation failed; Report is then zero.
	Err error
}

// Result collects every point of a sweep in grid order.
type Result struct {
	Points []Point
	// Violations counts points that failed with a consistency violation.
	Violations int
	// Failed counts points that failed for any other reason.
	Failed int
}

// OK reports whether every point succeeded.
func (r *Result) OK() bool {
	return r.Violations == 0 && r.Failed == 0
}

// Reports returns the reports of the successful points.
func (r *Result) Reports() []model.Report {
	out := make([]model.Report, 0, len(r.Points))
	for _, pt := range r.Points {
		if pt.Err == nil {
			out = append(out, pt.Report)
		}
	}
	return out
}

// Runner evaluates a Config grid.
type Runner struct {
	cfg    Config
	logger *pramcost.Logger
	ctrl   *resource.Controller
	ev     *pramcost.Evaluator[rune]
}

// NewRunner validates cfg and prepares a Runner. optFns configure the
// evaluator used for every point; the conflict rule from cfg is applied
// after them.
func NewRunner(cfg *Config, logger *pramcost.Logger, optFns ...pramcost.Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := search.ParseConflictRule(cfg.ConflictRule)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = pramcost.NoopLogger()
	}

	opts := append([]pramcost.Option{}, optFns...)
	opts = append(opts, pramcost.WithConflictRule(rule))

	return &Runner{
		cfg:    *cfg,
		logger: logger,
		ctrl: resource.NewController(resource.Config{
			MaxWorkers:        cfg.Workers,
			EvaluationsPerSec: cfg.EvaluationsPerSec,
		}),
		ev: pramcost.New[rune](opts...),
	}, nil
}

// Run evaluates every grid point. Per-point failures are recorded in the
// Result rather than aborting the sweep; only cancellation of ctx stops it
// early, in which case the context error is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	grid := r.cfg.Points()
	res := &Result{Points: make([]Point, len(grid))}

	progress := rate.Sometimes{First: 1, Interval: r.cfg.ProgressInterval}
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for i, np := range grid {
		i, np := i, np
		if !r.ctrl.TryAcquire() {
			r.logger.WithN(np[0]).WithProcessors(np[1]).DebugContext(gctx, "sweep waiting for capacity",
				"active", r.ctrl.Active(),
				"max_workers", r.ctrl.MaxWorkers(),
			)
			if err := r.ctrl.Acquire(gctx); err != nil {
				break
			}
		}
		g.Go(func() error {
			defer r.ctrl.Release()

			res.Points[i] = r.evaluatePoint(gctx, int64(i), np[0], np[1])

			completed := done.Add(1)
			progress.Do(func() {
				r.logger.DebugContext(gctx, "sweep progress",
					"done", completed,
					"total", len(grid),
				)
			})
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, pt := range res.Points {
		switch {
		case pt.Err == nil:
		case pramcost.IsConsistencyViolation(pt.Err):
			res.Violations++
		default:
			res.Failed++
		}
	}
	r.logger.LogSweep(ctx, len(grid), res.Violations, res.Failed)

	return res, nil
}

func (r *Runner) evaluatePoint(ctx context.Context, index int64, n, p int) Point {
	pt := Point{N: n, P: p}

	gen := symbols.NewSeededGenerator(r.cfg.Seed + index)
	seq, err := gen.Unique(n)
	if err != nil {
		pt.Err = fmt.Errorf("generate input: %w", err)
		return pt
	}
	pt.Target, err = gen.Target(seq, r.cfg.TargetPresent)
	if err != nil {
		pt.Err = fmt.Errorf("pick target: %w", err)
		return pt
	}

	pt.Report, pt.Err = r.ev.Evaluate(ctx, seq, pt.Target, p)
	return pt
}

// Run is a convenience wrapper around NewRunner and Runner.Run.
func Run(ctx context.Context, cfg *Config, logger *pramcost.Logger, optFns ...pramcost.Option) (*Result, error) {
	r, err := NewRunner(cfg, logger, optFns...)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}
