package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// NotFound is the index reported when the target does not occur.
const NotFound = -1

// Name identifies one of the four computation models.
type Name uint8

const (
	// Sequential is the single-processor linear scan baseline.
	Sequential Name = iota
	// EREW is the Exclusive-Read Exclusive-Write PRAM.
	EREW
	// CREW is the Concurrent-Read Exclusive-Write PRAM.
	CREW
	// CRCW is the Concurrent-Read Concurrent-Write PRAM (priority rule).
	CRCW

	// NumModels is the size of the closed model set.
	NumModels = 4
)

var names = [NumModels]string{"Sequential", "EREW", "CREW", "CRCW"}

// String returns the display name of the model.
func (n Name) String() string {
	if int(n) < NumModels {
		return names[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Valid reports whether n is one of the four known models.
func (n Name) Valid() bool { return int(n) < NumModels }

// IsPRAM reports whether n is one of the parallel models.
func (n Name) IsPRAM() bool { return n == EREW || n == CREW || n == CRCW }

// Names returns all models in report order.
func Names() []Name {
	return []Name{Sequential, EREW, CREW, CRCW}
}

// ParseName parses a model name case-insensitively.
func ParseName(s string) (Name, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("unknown model %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("unknown model %d", uint8(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Result is the outcome of running one model on one input.
type Result struct {
	// Index is the position of the target, or NotFound.
	Index int `json:"index"`
	// Steps is the number of synchronous steps the model charges.
	Steps int `json:"steps"`
}

// Found reports whether the target was located.
func (r Result) Found() bool { return r.Index != NotFound }

// String returns a string representation of the Result.
func (r Result) String() string {
	return fmt.Sprintf("(%d, %d)", r.Index, r.Steps)
}

// Entry is one row of a Report.
type Entry struct {
	Model   Name    `json:"model"`
	Index   int     `json:"index"`
	Speedup float64 `json:"speedup"`
	Steps   int     `json:"steps"`
}

type entryJSON struct {
	Model   Name            `json:"model"`
	Index   int             `json:"index"`
	Speedup json.RawMessage `json:"speedup"`
	Steps   int             `json:"steps"`
}

// infinity is how an unbounded speedup is written, since JSON has no Inf.
const infinity = `"+Inf"`

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	speedup := json.RawMessage(infinity)
	if !math.IsInf(e.Speedup, 1) {
		b, err := json.Marshal(e.Speedup)
		if err != nil {
			return nil, err
		}
		speedup = b
	}
	return json.Marshal(entryJSON{Model: e.Model, Index: e.Index, Speedup: speedup, Steps: e.Steps})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Model, e.Index, e.Steps = raw.Model, raw.Index, raw.Steps
	if string(raw.Speedup) == infinity {
		e.Speedup = math.Inf(1)
		return nil
	}
	return json.Unmarshal(raw.Speedup, &e.Speedup)
}

// Report holds the evaluation of all four models on one input.
//
// The shape is fixed: one entry per model, indexed by Name.
type Report struct {
	N       int              `json:"n"`
	P       int              `json:"p"`
	Results [NumModels]Entry `json:"results"`
}

// Get returns the entry for the given model, or a zero Entry if name is not
// a valid model.
func (r *Report) Get(name Name) Entry {
	if !name.Valid() {
		return Entry{}
	}
	return r.Results[name]
}

// Entries returns the entries in report order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, NumModels)
	copy(out, r.Results[:])
	return out
}

// Speedup returns seqSteps/steps, or +Inf when steps is zero.
func Speedup(seqSteps, steps int) float64 {
	if steps == 0 {
		return math.Inf(1)
	}
	return float64(seqSteps) / float64(steps)
}
