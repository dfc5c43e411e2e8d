package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/pramcost/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies symbols.Source.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// Ints returns n distinct ints in shuffled order.
func (r *RNG) Ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * 7
	}
	r.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Letters returns the first n symbols of "ABC...", continuing past 'Z'
// with consecutive code points.
func Letters(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = 'A' + rune(i)
	}
	return out
}

// ReferenceIndex returns the first position of target by brute force.
func ReferenceIndex[T comparable](seq []T, target T) int {
	for i := range seq {
		if seq[i] == target {
			return i
		}
	}
	return model.NotFound
}

// ReferenceSteps evaluates the textbook step formulas in floating point.
// It serves as an oracle independent of the integer arithmetic under test.
// k is the target position, or model.NotFound.
func ReferenceSteps(name model.Name, n, p, k int) int {
	if name == model.Sequential {
		if k == model.NotFound {
			return n
		}
		return k + 1
	}

	search := int(math.Ceil(float64(n) / float64(p)))
	if name == model.CRCW {
		return search
	}

	reduction := 0
	if p > 1 {
		reduction = int(math.Ceil(math.Log2(float64(p))))
	}
	return search + reduction
}
