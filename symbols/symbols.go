package symbols

import (
	"fmt"
	"math/rand"
	"slices"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"
)

// Alphabet is the base symbol set: ASCII letters followed by digits.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AbsentSymbol is the target used when the target must not occur.
const AbsentSymbol = '#'

// extensionStart is the first code point used once Alphabet is exhausted
// (the box-drawing block).
const extensionStart = 0x2500

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// MaxSymbols is the largest n Unique can satisfy: Alphabet plus every code
// point from extensionStart to utf8.MaxRune except surrogates.
const MaxSymbols = len(Alphabet) + (utf8.MaxRune + 1 - extensionStart) - (surrogateMax - surrogateMin + 1)

// Source is the pseudo-random source a Generator draws from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Generator builds sequences of pairwise distinct symbols.
//
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator returns a Generator backed by a math/rand source
// seeded with seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed))) // nolint gosec
}

// Unique returns n pairwise distinct symbols. Up to len(Alphabet) symbols
// are drawn from a shuffled Alphabet; past that the whole shuffled Alphabet
// is followed by consecutive code points from U+2500, skipping surrogates.
func (g *Generator) Unique(n int) ([]rune, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative sequence length %d", n)
	}
	if n > MaxSymbols {
		return nil, &ErrTooManySymbols{Requested: n}
	}

	base := []rune(Alphabet)
	g.src.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})
	if n <= len(base) {
		return base[:n], nil
	}

	out := make([]rune, 0, n)
	out = append(out, base...)
	next := rune(extensionStart)
	for len(out) < n {
		if next >= surrogateMin && next <= surrogateMax {
			next = surrogateMax + 1
			continue
		}
		out = append(out, next)
		next++
	}
	return out, nil
}

// Target picks the symbol to search for: a uniformly chosen element of seq
// when present is true, AbsentSymbol otherwise.
func (g *Generator) Target(seq []rune, present bool) (rune, error) {
	if !present {
		if slices.Contains(seq, AbsentSymbol) {
			return 0, fmt.Errorf("sequence contains the absent symbol %q", AbsentSymbol)
		}
		return AbsentSymbol, nil
	}
	if len(seq) == 0 {
		return 0, fmt.Errorf("cannot pick a present target from an empty sequence")
	}
	return seq[g.src.Intn(len(seq))], nil
}

// Validate checks that every symbol in seq occurs once.
func Validate(seq []rune) error {
	seen := roaring.New()
	for i, sym := range seq {
		if seen.Contains(uint32(sym)) {
			return &ErrDuplicateSymbol{
				Symbol: sym,
				First:  slices.Index(seq[:i], sym),
				Second: i,
			}
		}
		seen.Add(uint32(sym))
	}
	return nil
}
