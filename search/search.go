package search

import (
	"fmt"
	"slices"

	"github.com/hupe1980/pramcost/cost"
	"github.com/hupe1980/pramcost/model"
)

// Sequential scans seq from the front, charging one step per compared
// element. On a miss every element was compared, so Steps == len(seq).
func Sequential[T comparable](seq []T, target T) model.Result {
	steps := 0
	for i, sym := range seq {
		steps++
		if sym == target {
			return model.Result{Index: i, Steps: steps}
		}
	}
	return model.Result{Index: model.NotFound, Steps: steps}
}

// EREW models the search on an Exclusive-Read Exclusive-Write PRAM with p
// processors: a ceil(n/p) scan over disjoint blocks followed by a
// ceil(log2 p) tree reduction of the per-processor results.
func EREW[T comparable](seq []T, target T, p int) (model.Result, error) {
	return pram(model.EREW, seq, target, p)
}

// CREW models the search on a Concurrent-Read Exclusive-Write PRAM.
//
// The scan already reads disjoint cells, so concurrent reads buy nothing and
// the step count equals EREW's.
func CREW[T comparable](seq []T, target T, p int) (model.Result, error) {
	return pram(model.CREW, seq, target, p)
}

// CRCW models the search on a Concurrent-Read Concurrent-Write PRAM. Under
// the priority rule the matching processor writes the answer cell in the
// round it finds the target, so only the scan is charged.
func CRCW[T comparable](seq []T, target T, p int, rule ConflictRule) (model.Result, error) {
	if !rule.Supported() {
		return model.Result{}, &ErrUnsupportedConflictRule{Rule: rule}
	}
	return pram(model.CRCW, seq, target, p)
}

// Run dispatches to the search function of the named model.
func Run[T comparable](name model.Name, seq []T, target T, p int, rule ConflictRule) (model.Result, error) {
	switch name {
	case model.Sequential:
		return Sequential(seq, target), nil
	case model.EREW:
		return EREW(seq, target, p)
	case model.CREW:
		return CREW(seq, target, p)
	case model.CRCW:
		return CRCW(seq, target, p, rule)
	default:
		return model.Result{}, fmt.Errorf("unknown model %s", name)
	}
}

// pram reports the true first occurrence; the step count comes from the
// model's formula and does not depend on where the target is.
func pram[T comparable](name model.Name, seq []T, target T, p int) (model.Result, error) {
	steps, err := cost.Steps(name, len(seq), p)
	if err != nil {
		return model.Result{}, err
	}
	return model.Result{Index: slices.Index(seq, target), Steps: steps}, nil
}
