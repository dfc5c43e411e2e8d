package pramcost

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pramcost/cost"
	"github.com/hupe1980/pramcost/model"
	"github.com/hupe1980/pramcost/search"
)

var (
	// ErrInvalidProcessorCount is returned when p < 1.
	ErrInvalidProcessorCount = errors.New("processor count must be positive")

	// ErrUnsupportedConflictRule is returned when a CRCW conflict rule other
	// than priority is configured.
	ErrUnsupportedConflictRule = errors.New("unsupported CRCW conflict rule")
)

// ErrConsistencyViolation indicates that the models disagree on the index of
// the target while the sequential scan found it. It means a logic defect or
// an input that breaks the distinct-symbol assumption.
type ErrConsistencyViolation struct {
	// Indices holds the index each model reported, indexed by model.Name.
	Indices [model.NumModels]int
}

func (e *ErrConsistencyViolation) Error() string {
	return fmt.Sprintf("inconsistent search indices: sequential=%d erew=%d crew=%d crcw=%d",
		e.Indices[model.Sequential], e.Indices[model.EREW], e.Indices[model.CREW], e.Indices[model.CRCW])
}

// translateError maps package-level errors onto the root sentinels.
//
// The original error stays reachable via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pe *cost.ErrInvalidProcessorCount
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrInvalidProcessorCount, err)
	}
	var ue *search.ErrUnsupportedConflictRule
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %w", ErrUnsupportedConflictRule, err)
	}

	return err
}
