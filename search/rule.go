package search

import (
	"fmt"
	"strings"
)

// ConflictRule selects how a CRCW machine resolves simultaneous writes to
// the same cell.
type ConflictRule uint8

const (
	// Priority lets the lowest-numbered writing processor win.
	Priority ConflictRule = iota
	// Arbitrary lets any one writer win. Not implemented.
	Arbitrary
	// Common requires all writers to agree on the value. Not implemented.
	Common
	// Random picks a writer at random. Not implemented.
	Random
)

var ruleNames = [...]string{"priority", "arbitrary", "common", "random"}

func (r ConflictRule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("ConflictRule(%d)", uint8(r))
}

// Supported reports whether the step model is defined for r.
func (r ConflictRule) Supported() bool { return r == Priority }

// ParseConflictRule maps a rule name to a ConflictRule. The empty string
// selects Priority. Known but unsupported names parse successfully; CRCW
// rejects them.
func ParseConflictRule(s string) (ConflictRule, error) {
	if s == "" {
		return Priority, nil
	}
	for i, name := range ruleNames {
		if strings.EqualFold(s, name) {
			return ConflictRule(i), nil
		}
	}
	return 0, fmt.Errorf("unknown conflict rule %q", s)
}
