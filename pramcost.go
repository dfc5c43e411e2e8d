package pramcost

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pramcost/cost"
	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/search"
)

// Evaluator runs all four search models on one input and derives their
// speedups over the sequential scan.
//
// An Evaluator holds only configuration and is safe for concurrent use.
type Evaluator[T comparable] struct {
	opts options
}

// New creates an Evaluator for sequences of T.
func New[T comparable](optFns ...Option) *Evaluator[T] {
	return &Evaluator[T]{opts: applyOptions(optFns)}
}

// Evaluate runs Sequential, EREW, CREW and CRCW on (seq, target, p).
//
// The models must agree on the target's index unless the sequential scan
// reports model.NotFound; otherwise an *ErrConsistencyViolation is returned
// together with a zero Report. A processor count below one fails with
// ErrInvalidProcessorCount, an unsupported CRCW rule with
// ErrUnsupportedConflictRule.
func (e *Evaluator[T]) Evaluate(ctx context.Context, seq []T, target T, p int) (model.Report, error) {
	start := time.Now()

	report, err := e.evaluate(ctx, seq, target, p)

	var rp *model.Report
	if err == nil {
		rp = &report
	}
	e.opts.metricsCollector.RecordEvaluate(len(seq), p, rp, time.Since(start), err)
	e.opts.logger.LogEvaluate(ctx, len(seq), p, rp, err)

	return report, err
}

func (e *Evaluator[T]) evaluate(ctx context.Context, seq []T, target T, p int) (model.Report, error) {
	if p < 1 {
		return model.Report{}, translateError(&cost.ErrInvalidProcessorCount{P: p})
	}
	if !e.opts.conflictRule.Supported() {
		return model.Report{}, translateError(&search.ErrUnsupportedConflictRule{Rule: e.opts.conflictRule})
	}

	results, err := e.runModels(ctx, seq, target, p)
	if err != nil {
		return model.Report{}, translateError(err)
	}

	if err := checkConsistency(results); err != nil {
		e.opts.metricsCollector.RecordConsistencyViolation(len(seq), p)
		return model.Report{}, err
	}

	return buildReport(len(seq), p, results), nil
}

func (e *Evaluator[T]) runModels(ctx context.Context, seq []T, target T, p int) ([model.NumModels]model.Result, error) {
	var results [model.NumModels]model.Result

	if !e.opts.parallelModels {
		for _, name := range model.Names() {
			res, err := search.Run(name, seq, target, p, e.opts.conflictRule)
			if err != nil {
				return results, err
			}
			results[name] = res
		}
		return results, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for _, name := range model.Names() {
		name := name
		g.Go(func() error {
			res, err := search.Run(name, seq, target, p, e.opts.conflictRule)
			if err != nil {
				return err
			}
			// Each goroutine owns one slot.
			results[name] = res
			return nil
		})
	}
	err := g.Wait()

	return results, err
}

// checkConsistency accepts the results when every model reports the same
// index, or when the sequential scan did not find the target.
func checkConsistency(results [model.NumModels]model.Result) error {
	ref := results[model.Sequential].Index
	if ref == model.NotFound {
		return nil
	}

	for _, res := range results {
		if res.Index != ref {
			v := &ErrConsistencyViolation{}
			for i, r := range results {
				v.Indices[i] = r.Index
			}
			return v
		}
	}
	return nil
}

func buildReport(n, p int, results [model.NumModels]model.Result) model.Report {
	seqSteps := results[model.Sequential].Steps

	report := model.Report{N: n, P: p}
	for _, name := range model.Names() {
		res := results[name]
		speedup := 1.0
		if name != model.Sequential {
			speedup = model.Speedup(seqSteps, res.Steps)
		}
		report.Results[name] = model.Entry{
			Model:   name,
			Index:   res.Index,
			Speedup: speedup,
			Steps:   res.Steps,
		}
	}
	return report
}

// EvaluateString evaluates the runes of s with a one-off Evaluator.
func EvaluateString(ctx context.Context, s string, target rune, p int, optFns ...Option) (model.Report, error) {
	return New[rune](optFns...).Evaluate(ctx, []rune(s), target, p)
}

// IsConsistencyViolation reports whether err is, or wraps, an
// *ErrConsistencyViolation.
func IsConsistencyViolation(err error) bool {
	var v *ErrConsistencyViolation
	return errors.As(err, &v)
}
