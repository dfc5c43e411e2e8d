// Package testutil provides testing utilities for pramcost.
//
// This package is intended for use in tests only.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	gen := symbols.NewGenerator(rng)
//	ints := rng.Ints(100) // distinct, shuffled
//
// # Oracles
//
//	k := testutil.ReferenceIndex(seq, target)
//	steps := testutil.ReferenceSteps(model.EREW, n, p, k)
package testutil
