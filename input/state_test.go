package input

import "testing"

func TestKeyEdgeDetection(t *testing.T) {
	s := NewSnapshot()
	const jump Key = 1

	if s.Key(jump) != Released {
		t.Fatalf("expected initial state Released")
	}

	s.KeyDown(jump)
	if s.Key(jump) != JustPressed {
		t.Fatalf("expected JustPressed after KeyDown, got %v", s.Key(jump))
	}
	if !s.KeyIsDown(jump) {
		t.Fatalf("KeyIsDown should be true for JustPressed")
	}

	s.EndFrame()
	if s.Key(jump) != Held {
		t.Fatalf("expected Held after EndFrame, got %v", s.Key(jump))
	}

	s.KeyUp(jump)
	if s.Key(jump) != JustReleased {
		t.Fatalf("expected JustReleased after KeyUp, got %v", s.Key(jump))
	}

	s.EndFrame()
	if s.Key(jump) != Released {
		t.Fatalf("expected Released after second EndFrame, got %v", s.Key(jump))
	}
}

func TestIntraFramePressReleaseObservable(t *testing.T) {
	s := NewSnapshot()
	const k Key = 2

	// Pressed and released within the same frame, before EndFrame is called.
	s.KeyDown(k)
	s.KeyUp(k)
	if got := s.Key(k); got != JustReleased {
		t.Fatalf("expected final observable state JustReleased, got %v", got)
	}
	s.EndFrame()
	if got := s.Key(k); got != Released {
		t.Fatalf("expected Released after EndFrame, got %v", got)
	}
}

func TestMouseDelta(t *testing.T) {
	s := NewSnapshot()
	s.SetMousePos(10, 10)
	s.EndFrame()
	if s.MouseDelta != (Vec2{0, 0}) {
		t.Fatalf("expected zero delta on first frame, got %v", s.MouseDelta)
	}
	s.SetMousePos(15, 12)
	s.EndFrame()
	if s.MouseDelta != (Vec2{5, 2}) {
		t.Fatalf("expected delta (5,2), got %v", s.MouseDelta)
	}
}

func TestScrollResetsEachFrame(t *testing.T) {
	s := NewSnapshot()
	s.AddScroll(0, 1)
	if s.ScrollDY != 1 {
		t.Fatalf("expected scroll accumulation")
	}
	s.EndFrame()
	if s.ScrollDY != 0 {
		t.Fatalf("expected scroll to reset after EndFrame")
	}
}
