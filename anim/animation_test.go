package anim

import (
	"testing"

	"github.com/hearthlight/engine2d/math2d"
)

func rect(x float64) math2d.Rect { return math2d.Rect{X: x, Y: 0, W: 16, H: 16} }

func walkAnim(looping bool) *Animation {
	return &Animation{
		Name:    "walk",
		Looping: looping,
		Frames: []Frame{
			{UV: rect(0), Duration: 0.1},
			{UV: rect(16), Duration: 0.1},
			{UV: rect(32), Duration: 0.1},
		},
	}
}

func TestSampleMidFrame(t *testing.T) {
	a := walkAnim(false)
	got := Sample(a, 0.15)
	if got != rect(16) {
		t.Fatalf("expected frame 1 at t=0.15, got %v", got)
	}
}

func TestSampleNonLoopingClampsAtEnd(t *testing.T) {
	a := walkAnim(false)
	got := Sample(a, 10.0)
	if got != rect(32) {
		t.Fatalf("expected last frame past total duration, got %v", got)
	}
}

func TestSampleLoopingWraps(t *testing.T) {
	a := walkAnim(true)
	total := a.TotalDuration()
	got := Sample(a, total+0.05)
	want := Sample(a, 0.05)
	if got != want {
		t.Fatalf("expected wrapped sample to equal sample at elapsed mod total, got %v want %v", got, want)
	}
}

func TestSampleEmptyAnimationReturnsZeroRect(t *testing.T) {
	a := &Animation{Name: "empty"}
	if got := Sample(a, 1.0); got != (math2d.Rect{}) {
		t.Fatalf("expected zero rect for empty animation, got %v", got)
	}
}

func TestControllerPlayResetsOnlyOnNameChange(t *testing.T) {
	c := NewController()
	walk := walkAnim(true)
	idle := &Animation{Name: "idle", Looping: true, Frames: []Frame{{UV: rect(0), Duration: 1}}}

	c.Play(walk)
	c.Advance(0.15)
	if c.Elapsed() != 0.15 {
		t.Fatalf("expected elapsed 0.15, got %v", c.Elapsed())
	}

	// Re-playing the same animation must not reset elapsed.
	c.Play(walk)
	if c.Elapsed() != 0.15 {
		t.Fatalf("expected elapsed unchanged on same-name replay, got %v", c.Elapsed())
	}

	// Switching to a different animation resets elapsed to zero.
	c.Play(idle)
	if c.Elapsed() != 0 {
		t.Fatalf("expected elapsed reset on animation change, got %v", c.Elapsed())
	}
}

func TestControllerPausedDoesNotAdvance(t *testing.T) {
	c := NewController()
	c.Play(walkAnim(true))
	c.Paused = true
	c.Advance(1.0)
	if c.Elapsed() != 0 {
		t.Fatalf("expected paused controller to not advance, got %v", c.Elapsed())
	}
}

func TestControllerSpeedScalesAdvance(t *testing.T) {
	c := NewController()
	c.Play(walkAnim(true))
	c.Speed = 2
	c.Advance(0.1)
	if c.Elapsed() != 0.2 {
		t.Fatalf("expected elapsed 0.2 at 2x speed, got %v", c.Elapsed())
	}
}

func TestControllerCurrentUVNoActiveAnimation(t *testing.T) {
	c := NewController()
	if _, ok := c.CurrentUV(); ok {
		t.Fatalf("expected ok=false with no active animation")
	}
}
