package cost

import "fmt"

// ErrInvalidProcessorCount indicates a processor count below one.
type ErrInvalidProcessorCount struct {
	P int
}

func (e *ErrInvalidProcessorCount) Error() string {
	return fmt.Sprintf("invalid processor count: %d (must be >= 1)", e.P)
}

// ErrInvalidProblemSize indicates a negative problem size.
type ErrInvalidProblemSize struct {
	N int
}

func (e *ErrInvalidProblemSize) Error() string {
	return fmt.Sprintf("invalid problem size: %d", e.N)
}

// ErrNoClosedForm is returned by Steps for the sequential model, whose
// step count depends on where the target sits rather than on (n, p).
type ErrNoClosedForm struct {
	Model string
}

func (e *ErrNoClosedForm) Error() string {
	return fmt.Sprintf("model %s has no closed-form step count", e.Model)
}
