// Package cost holds the closed-form step formulas of the PRAM search models.
//
// Every model splits its work into a search phase and a combine phase:
//
//	search phase   ceil(n/p)          all PRAM classes
//	reduction      ceil(log2(p))      EREW, CREW (exclusive writes)
//	combine        0                  CRCW, priority rule
//
// All functions are pure and return an error for p < 1 or n < 0.
package cost
