package engine

import "testing"

// Scenario A from spec.md §8, worked through the documented algorithm
// (clamp dt_raw to MaxDelta, accumulate, ticks = floor(acc/FixedStep)
// capped at MaxTicksPerFrame): deltas [0.010,0.010,0.010,0.030,0.5]
// yield tick counts [0,1,0,2,8] — the last delta is clamped from 0.5 to
// MaxDelta=0.25 before accumulating, and the safety ceiling caps the
// final frame at 8 ticks; the whole steps beyond the ceiling are dropped
// and only the sub-step remainder stays in the accumulator.
func TestFixedTimestepDeterminism(t *testing.T) {
	c := NewClock()
	deltas := []float64{0.010, 0.010, 0.010, 0.030, 0.5}
	want := []int{0, 1, 0, 2, 8}

	for i, dt := range deltas {
		got := c.Advance(dt)
		if got != want[i] {
			t.Fatalf("frame %d: Advance(%v) = %d, want %d", i, dt, got, want[i])
		}
	}

	if c.Accumulator() < 0 || c.Accumulator() >= 100*FixedStep {
		t.Fatalf("expected a bounded residual accumulator, got %v", c.Accumulator())
	}
}

func TestAdvanceClampsRunawayDelta(t *testing.T) {
	c := NewClock()
	ticks := c.Advance(10.0) // far beyond MaxDelta
	if ticks != MaxTicksPerFrame {
		t.Fatalf("expected the safety ceiling to cap ticks at %d, got %d", MaxTicksPerFrame, ticks)
	}
}

func TestAdvanceTreatsNegativeDeltaAsZero(t *testing.T) {
	c := NewClock()
	c.Advance(0.02)
	before := c.Accumulator()
	ticks := c.Advance(-1.0)
	if ticks != 0 {
		t.Fatalf("expected 0 ticks for a non-increasing host clock, got %d", ticks)
	}
	if c.Accumulator() != before {
		t.Fatalf("expected accumulator unchanged by a negative delta, got %v want %v", c.Accumulator(), before)
	}
}

func TestAlphaStaysInUnitRange(t *testing.T) {
	// Deltas kept well under MaxTicksPerFrame*FixedStep so the safety
	// ceiling never truncates ticks; under those conditions alpha is
	// always the true accumulator remainder, which is < FixedStep.
	for _, dt := range []float64{0.001, 0.017, 0.033, 0.1} {
		c := NewClock()
		c.Advance(dt)
		if c.Alpha() < 0 || c.Alpha() >= 1 {
			t.Fatalf("alpha %v out of [0,1) range after Advance(%v)", c.Alpha(), dt)
		}
	}
}

func TestZeroDeltaProducesZeroTicks(t *testing.T) {
	c := NewClock()
	if got := c.Advance(0); got != 0 {
		t.Fatalf("expected 0 ticks for a zero delta, got %d", got)
	}
}
