package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random supplies uniformly distributed integers.
type Random interface {
	// IntInRange returns a value in [min, max], inclusive.
	IntInRange(min, max int) int
}

// RandSource is the default Random backed by a seeded PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandom creates a deterministic source. A zero seed picks a time-based one.
func NewRandom(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntInRange returns a uniform value in [min, max]. Swapped bounds are accepted.
func (r *RandSource) IntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// RandomDirection draws one of the four compass directions uniformly
func RandomDirection(r Random) Direction {
	return Direction(r.IntInRange(int(North), int(West)))
}
