package testutil

import (
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random source for tests
func NewTestRNG(seed uint64) *core.RandSource {
	return core.NewRandom(seed)
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// SequenceRandom replays a scripted list of values. Each value is clamped
// into the requested range so scripts stay valid when bounds change.
// When the script runs out it returns min.
type SequenceRandom struct {
	values []int
	next   int
}

// NewSequenceRandom creates a SequenceRandom replaying values in order
func NewSequenceRandom(values ...int) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// IntInRange returns the next scripted value
func (s *SequenceRandom) IntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if s.next >= len(s.values) {
		return min
	}
	v := s.values[s.next]
	s.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Directions scripts a sequence of rat directions
func Directions(dirs ...core.Direction) *SequenceRandom {
	values := make([]int, len(dirs))
	for i, d := range dirs {
		values[i] = int(d)
	}
	return NewSequenceRandom(values...)
}

// Remaining returns how many scripted values are unused
func (s *SequenceRandom) Remaining() int {
	return len(s.values) - s.next
}
