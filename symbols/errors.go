package symbols

import "fmt"

// ErrDuplicateSymbol indicates that a sequence repeats a symbol.
type ErrDuplicateSymbol struct {
	Symbol rune
	First  int
	Second int
}

func (e *ErrDuplicateSymbol) Error() string {
	return fmt.Sprintf("duplicate symbol %q at positions %d and %d", e.Symbol, e.First, e.Second)
}

// ErrTooManySymbols indicates that more distinct symbols were requested than
// Unicode can supply.
type ErrTooManySymbols struct {
	Requested int
}

func (e *ErrTooManySymbols) Error() string {
	return fmt.Sprintf("cannot generate %d distinct symbols", e.Requested)
}
