package pramcost

import (
	"context"
	"fmt"

	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/symbols"
)

// Trial is one generated search instance together with its evaluation.
type Trial struct {
	Sequence []rune
	Target   rune
	Report   model.Report
}

// Speedups generates n distinct symbols with gen, picks a target that is
// present or absent, and evaluates all models on p processors.
func Speedups(ctx context.Context, gen *symbols.Generator, n, p int, present bool, optFns ...Option) (Trial, error) {
	seq, err := gen.Unique(n)
	if err != nil {
		return Trial{}, fmt.Errorf("generate input: %w", err)
	}
	target, err := gen.Target(seq, present)
	if err != nil {
		return Trial{}, fmt.Errorf("pick target: %w", err)
	}

	report, err := New[rune](optFns...).Evaluate(ctx, seq, target, p)
	if err != nil {
		return Trial{}, err
	}

	return Trial{Sequence: seq, Target: target, Report: report}, nil
}
