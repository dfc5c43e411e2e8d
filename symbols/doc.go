// Package symbols generates search inputs: sequences of pairwise distinct
// runes and targets that are either drawn from the sequence or known to be
// absent.
//
// Randomness always comes from an explicitly passed Source, so runs are
// reproducible from a seed:
//
//	gen := symbols.NewSeededGenerator(42)
//	seq, _ := gen.Unique(256)
//	target, _ := gen.Target(seq, true)
package symbols
