package random

import (
	"errors"
	"testing"
)

func TestSeeded_StaysInRange(t *testing.T) {
	s := NewSeeded(42)
	for i := 0; i < 1000; i++ {
		v, err := s.NextInRange(1, 4)
		if err != nil {
			t.Fatalf("NextInRange(1, 4) error: %v", err)
		}
		if v < 1 || v >= 4 {
			t.Fatalf("NextInRange(1, 4) = %d, want value in [1, 4)", v)
		}
	}
}

func TestSeeded_EmptyRange(t *testing.T) {
	s := NewSeeded(1)
	if _, err := s.NextInRange(3, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("NextInRange(3, 3) error = %v, want ErrInvalidRange", err)
	}
	if _, err := s.NextInRange(5, 2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("NextInRange(5, 2) error = %v, want ErrInvalidRange", err)
	}
}

func TestSeeded_SetSeedReplays(t *testing.T) {
	s := NewSeeded(7)
	first := make([]int, 20)
	for i := range first {
		first[i], _ = s.NextInRange(0, 1000)
	}
	s.SetSeed(s.Seed())
	for i := range first {
		v, _ := s.NextInRange(0, 1000)
		if v != first[i] {
			t.Fatalf("draw %d after reseed = %d, want %d", i, v, first[i])
		}
	}
}

func TestFixed_ReplaysThenExhausts(t *testing.T) {
	f := NewFixed(3, 0, 9)
	for _, want := range []int{3, 0, 9} {
		got, err := f.NextInRange(0, 10)
		if err != nil {
			t.Fatalf("NextInRange error: %v", err)
		}
		if got != want {
			t.Errorf("NextInRange = %d, want %d", got, want)
		}
	}
	if _, err := f.NextInRange(0, 10); !errors.Is(err, ErrExhaustedSequence) {
		t.Errorf("NextInRange on empty sequence error = %v, want ErrExhaustedSequence", err)
	}
}

func TestFixed_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min, max int
	}{
		{"above max", 99, 0, 24},
		{"equal to max", 2, 0, 2},
		{"below min", 0, 1, 4},
		{"empty range", 0, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixed(tt.value)
			if _, err := f.NextInRange(tt.min, tt.max); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("NextInRange(%d, %d) with %d queued error = %v, want ErrInvalidRange",
					tt.min, tt.max, tt.value, err)
			}
			if f.Remaining() != 1 {
				t.Errorf("Remaining() = %d, want the rejected value left in place", f.Remaining())
			}
		})
	}
}

func TestFixed_SetSeedRewinds(t *testing.T) {
	f := NewFixed(5, 6)
	if f.Seed() != fixedSeed {
		t.Errorf("Seed() = %d, want %d", f.Seed(), fixedSeed)
	}
	f.NextInRange(0, 10)
	f.NextInRange(0, 10)
	if f.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", f.Remaining())
	}
	f.SetSeed(99)
	if f.Seed() != 99 {
		t.Errorf("Seed() after SetSeed(99) = %d", f.Seed())
	}
	if v, err := f.NextInRange(0, 10); err != nil || v != 5 {
		t.Errorf("NextInRange after rewind = %d, %v; want 5, nil", v, err)
	}
}

func TestFixed_CopiesInput(t *testing.T) {
	vals := []int{1, 2}
	f := NewFixed(vals...)
	vals[0] = 100
	if v, _ := f.NextInRange(0, 10); v != 1 {
		t.Errorf("NextInRange = %d, want 1 (source must not alias caller slice)", v)
	}
}
