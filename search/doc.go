// Package search runs the four search models over a sequence of symbols.
//
// None of the parallel models executes concurrently. Each reports the true
// position of the target and charges the step count of its formula in
// package cost:
//
//	res := search.Sequential(seq, 'D')
//	res, err := search.EREW(seq, 'D', 8)
//	res, err := search.CRCW(seq, 'D', 8, search.Priority)
//
// Sequences are assumed to hold pairwise distinct symbols; with duplicates
// every model still reports the first occurrence.
package search
