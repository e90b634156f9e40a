// Package random supplies the bounded random integers consumed by world
// generation and play. A Seeded source wraps math/rand; a Fixed source replays
// a predefined sequence so tests can drive generation step by step.
package random

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrExhaustedSequence is returned by a Fixed source once every
	// predefined value has been handed out.
	ErrExhaustedSequence = errors.New("random: predefined sequence exhausted")

	// ErrInvalidRange is returned when max is not greater than min.
	ErrInvalidRange = errors.New("random: empty range")
)

// Source produces integers in [min, max).
type Source interface {
	NextInRange(min, max int) (int, error)
	Seed() int64
	SetSeed(seed int64)
}

// Seeded is a Source backed by math/rand.
type Seeded struct {
	seed int64
	rnd  *rand.Rand
}

// NewSeeded returns a Seeded source starting from seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// New returns a Seeded source with a time-derived seed.
func New() *Seeded {
	return NewSeeded(time.Now().UnixNano() & 0x7fffffff)
}

// NextInRange returns a uniformly distributed integer in [min, max).
func (s *Seeded) NextInRange(min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	return s.rnd.Intn(max-min) + min, nil
}

// Seed returns the seed the generator was last reset with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// SetSeed resets the generator so it replays the sequence for seed.
func (s *Seeded) SetSeed(seed int64) {
	s.seed = seed
	s.rnd.Seed(seed)
}

// fixedSeed is reported by Fixed sources until SetSeed is called.
const fixedSeed = 10

// Fixed replays a predefined sequence of values. Each value must fall inside
// the range it is drawn for.
type Fixed struct {
	values []int
	pos    int
	seed   int64
}

// NewFixed returns a Fixed source that hands out values in order.
func NewFixed(values ...int) *Fixed {
	v := make([]int, len(values))
	copy(v, values)
	return &Fixed{values: v, seed: fixedSeed}
}

// NextInRange returns the next predefined value. A value outside [min, max)
// is an error and stays unconsumed.
func (f *Fixed) NextInRange(min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	if f.pos >= len(f.values) {
		return 0, ErrExhaustedSequence
	}
	v := f.values[f.pos]
	if v < min || v >= max {
		return 0, fmt.Errorf("%w: predefined value %d outside [%d, %d)", ErrInvalidRange, v, min, max)
	}
	f.pos++
	return v, nil
}

// Seed returns the recorded seed.
func (f *Fixed) Seed() int64 {
	return f.seed
}

// SetSeed records seed and rewinds the sequence to its first value, so a
// reset replays exactly the same draws.
func (f *Fixed) SetSeed(seed int64) {
	f.seed = seed
	f.pos = 0
}

// Remaining reports how many predefined values are left.
func (f *Fixed) Remaining() int {
	return len(f.values) - f.pos
}
