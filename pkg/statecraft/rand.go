package statecraft

import (
	"math/rand"
	"time"
)

// Rand is the random source every engine draws from. *rand.Rand satisfies it.
// Tests pass a seeded source so scenarios are reproducible.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value uniformly drawn from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance reports whether a Bernoulli trial with probability p succeeds.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// IntBetween returns an integer in [lo, hi], both inclusive.
func IntBetween(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
