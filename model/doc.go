// Package model defines the value types shared by every pramcost package.
//
// # Models
//
//   - Sequential: linear scan, one comparison per step
//   - EREW: exclusive reads and writes, tree reduction to combine
//   - CREW: concurrent reads, exclusive writes, tree reduction to combine
//   - CRCW: concurrent reads and writes, priority rule, no reduction
//
// # Values
//
//   - Result: (index, steps) produced by a single model
//   - Entry: (model, index, speedup, steps) row of a report
//   - Report: fixed four-entry record indexed by Name
//
// Speedup is always measured against the sequential step count:
//
//	s := model.Speedup(seq.Steps, erew.Steps)
package model
