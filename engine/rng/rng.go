// Package rng provides the seedable random source injected through the
// session context, so tests can pin every probabilistic branch.
package rng

import "math/rand"

// RNG wraps math/rand.Rand behind the handful of draws the engine needs.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// New creates a new deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.src.Intn(sides) + 1
}

// Pick returns a random index in [0, n). n must be positive.
func (r *RNG) Pick(n int) int {
	return r.src.Intn(n)
}

// Chance returns true with the given probability in [0, 1].
func (r *RNG) Chance(p float64) bool {
	return r.src.Float64() < p
}

// WeightedSelect returns an index chosen by weighted random selection.
// weights must be non-empty with all positive values.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
