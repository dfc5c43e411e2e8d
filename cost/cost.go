package cost

import (
	"math/bits"

	"github.com/hupe1980/pramcost/model"
)

// CRCWCombineSteps is the combine cost under the priority write rule: the
// single matching processor writes the answer in the round it finds it.
const CRCWCombineSteps = 0

// SearchPhaseSteps returns ceil(n/p), the rounds p processors need to each
// inspect a disjoint share of n positions at one comparison per round.
func SearchPhaseSteps(n, p int) (int, error) {
	if p < 1 {
		return 0, &ErrInvalidProcessorCount{P: p}
	}
	if n < 0 {
		return 0, &ErrInvalidProblemSize{N: n}
	}
	steps := n / p
	if n%p != 0 {
		steps++
	}
	return steps, nil
}

// ReductionSteps returns ceil(log2(p)) for p > 1 and 0 for p == 1: the depth
// of the binary combining tree that merges p local results under exclusive
// writes.
func ReductionSteps(p int) (int, error) {
	if p < 1 {
		return 0, &ErrInvalidProcessorCount{P: p}
	}
	if p == 1 {
		return 0, nil
	}
	return bits.Len(uint(p - 1)), nil
}

// Steps returns the total step count charged by a PRAM model for a problem of
// size n on p processors.
func Steps(name model.Name, n, p int) (int, error) {
	search, err := SearchPhaseSteps(n, p)
	if err != nil {
		return 0, err
	}

	switch name {
	case model.EREW, model.CREW:
		reduction, err := ReductionSteps(p)
		if err != nil {
			return 0, err
		}
		return search + reduction, nil
	case model.CRCW:
		return search + CRCWCombineSteps, nil
	default:
		return 0, &ErrNoClosedForm{Model: name.String()}
	}
}

// BestProcessorCount returns the smallest p in [1, maxP] that minimizes the
// step count of the given PRAM model, together with that step count.
//
// For EREW and CREW the total is not monotone in p, since the reduction
// depth can grow faster than the search phase shrinks.
func BestProcessorCount(name model.Name, n, maxP int) (p, steps int, err error) {
	if maxP < 1 {
		return 0, 0, &ErrInvalidProcessorCount{P: maxP}
	}

	p, steps = 1, -1
	for candidate := 1; candidate <= maxP; candidate++ {
		s, err := Steps(name, n, candidate)
		if err != nil {
			return 0, 0, err
		}
		if steps < 0 || s < steps {
			p, steps = candidate, s
		}
	}
	return p, steps, nil
}
