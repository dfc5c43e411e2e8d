package search

import "fmt"

// ErrUnsupportedConflictRule is returned when CRCW is asked to resolve
// concurrent writes with a rule other than Priority.
type ErrUnsupportedConflictRule struct {
	Rule ConflictRule
}

func (e *ErrUnsupportedConflictRule) Error() string {
	return fmt.Sprintf("unsupported CRCW conflict rule: %s", e.Rule)
}
