package camera

import (
	"math"
	"testing"

	"github.com/hearthlight/engine2d/math2d"
)

const epsilon = 1e-9

func almostEqual(a, b math2d.Vec2) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

// Scenario F from spec.md §8.
func TestWorldScreenRoundTripScenarioF(t *testing.T) {
	c := New(800, 600)
	c.Position = math2d.Vec2{X: 100, Y: 50}
	c.SetZoom(2)

	screen := c.WorldToScreen(math2d.Vec2{X: 100, Y: 50})
	if !almostEqual(screen, math2d.Vec2{X: 400, Y: 300}) {
		t.Fatalf("world_to_screen = %v, want (400,300)", screen)
	}

	world := c.ScreenToWorld(screen)
	if !almostEqual(world, math2d.Vec2{X: 100, Y: 50}) {
		t.Fatalf("screen_to_world(world_to_screen(p)) = %v, want (100,50)", world)
	}

	corner := c.ScreenToWorld(math2d.Vec2{X: 0, Y: 0})
	if !almostEqual(corner, math2d.Vec2{X: -100, Y: -100}) {
		t.Fatalf("screen_to_world((0,0)) = %v, want (-100,-100)", corner)
	}
}

func TestScreenToWorldRoundTripProperty(t *testing.T) {
	c := New(1024, 768)
	c.Position = math2d.Vec2{X: -37, Y: 512}
	c.SetZoom(3.25)

	points := []math2d.Vec2{{X: 0, Y: 0}, {X: 12.5, Y: -8}, {X: -999, Y: 42}, {X: 1e6, Y: -1e6}}
	for _, p := range points {
		back := c.ScreenToWorld(c.WorldToScreen(p))
		if !almostEqual(back, p) {
			t.Fatalf("round trip failed for %v: got %v", p, back)
		}
	}
}

func TestZoomClamps(t *testing.T) {
	c := New(800, 600)
	c.SetZoom(0.001)
	if c.Zoom != MinZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MinZoom, c.Zoom)
	}
	c.SetZoom(1000)
	if c.Zoom != MaxZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MaxZoom, c.Zoom)
	}
}

func TestFollowStableAtZeroDt(t *testing.T) {
	c := New(800, 600)
	c.Position = math2d.Vec2{X: 0, Y: 0}
	c.Follow(math2d.Vec2{X: 100, Y: 100})
	c.Update(5, 0)
	if c.Position != (math2d.Vec2{X: 0, Y: 0}) {
		t.Fatalf("expected no-op at dt=0, got %v", c.Position)
	}
}

func TestFollowConvergesTowardTarget(t *testing.T) {
	c := New(800, 600)
	target := math2d.Vec2{X: 100, Y: 0}
	c.Follow(target)
	for i := 0; i < 240; i++ {
		c.Update(5, 1.0/60)
	}
	if math.Abs(c.Position.X-target.X) > 0.5 {
		t.Fatalf("expected camera to converge near target after 4s, got %v", c.Position)
	}
}

func TestClampToBoundsKeepsVisibleBoundsInside(t *testing.T) {
	c := New(800, 600)
	c.SetClampBounds(math2d.NewAABB(0, 0, 2000, 2000))
	c.Position = math2d.Vec2{X: -500, Y: 3000}
	c.ClampToBounds()

	vb := c.VisibleBounds()
	if vb.Min.X < 0 || vb.Max.X > 2000 || vb.Min.Y < 0 || vb.Max.Y > 2000 {
		t.Fatalf("visible bounds %v escaped clamp rect", vb)
	}
}

func TestClampToBoundsCentersWhenMapSmallerThanViewport(t *testing.T) {
	c := New(800, 600)
	c.SetClampBounds(math2d.NewAABB(0, 0, 100, 100))
	c.Position = math2d.Vec2{X: 9999, Y: 9999}
	c.ClampToBounds()

	if c.Position.X != 50 || c.Position.Y != 50 {
		t.Fatalf("expected camera centered on undersized map, got %v", c.Position)
	}
}
