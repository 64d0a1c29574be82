// Package camera implements the 2D camera contract from spec.md §4.5:
// position/zoom/viewport, world<->screen transforms, visible-bounds
// culling, exponential smoothing follow, and bounds clamping.
//
// Grounded on original_source/crates/engine_render/src/camera.rs, adapted
// to the engine's Vec2/Mat4 primitives and Ebitengine's pixel-space
// screen convention (Y increases downward, matching the original's screen
// coordinates exactly — no flip is needed).
package camera

import (
	"math"

	"github.com/hearthlight/engine2d/math2d"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// Camera holds 2D camera state: position (world center), zoom, an
// optional rotation, viewport size, and an optional clamp rectangle.
type Camera struct {
	Position math2d.Vec2
	Zoom     float64
	Rotation float64

	ViewportW, ViewportH float64

	clampRect    math2d.AABB
	hasClampRect bool

	followTarget    math2d.Vec2
	hasFollowTarget bool
}

// New creates a camera centered at the origin with zoom 1.
func New(viewportW, viewportH float64) *Camera {
	return &Camera{
		Position:  math2d.Vec2{},
		Zoom:      1,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// SetZoom clamps and applies a new zoom level.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math2d.Clamp(z, MinZoom, MaxZoom)
}

// SetViewport updates the tracked viewport size, e.g. on a host resize
// event.
func (c *Camera) SetViewport(w, h float64) {
	c.ViewportW, c.ViewportH = w, h
}

// SetClampBounds installs a world-space rectangle the camera's visible
// bounds must stay within. Call ClampToBounds after moving the camera to
// enforce it.
func (c *Camera) SetClampBounds(bounds math2d.AABB) {
	c.clampRect = bounds
	c.hasClampRect = true
}

// ClearClampBounds removes any clamp rectangle previously set.
func (c *Camera) ClearClampBounds() {
	c.hasClampRect = false
}

// ViewMatrix translates by -position then scales by zoom, per spec.md
// §4.5.
func (c *Camera) ViewMatrix() math2d.Mat4 {
	return math2d.Scale2D(c.Zoom, c.Zoom).Mul(math2d.Translation2D(-c.Position.X, -c.Position.Y))
}

// ProjectionMatrix returns the pixel-space projection over the viewport: a
// translation that puts the view-space origin (the camera position) at the
// screen center. No NDC scaling is applied; the draw target is addressed
// in pixels.
func (c *Camera) ProjectionMatrix() math2d.Mat4 {
	return math2d.Translation2D(c.ViewportW/2, c.ViewportH/2)
}

// ViewProjection composes the view and projection matrices into the
// single matrix the renderer's uniform buffer needs: world position ->
// centered-at-camera -> zoomed -> offset to screen center.
func (c *Camera) ViewProjection() math2d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// WorldToScreen converts a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p math2d.Vec2) math2d.Vec2 {
	relative := p.Sub(c.Position)
	zoomed := relative.Scale(c.Zoom)
	return zoomed.Add(math2d.Vec2{X: c.ViewportW / 2, Y: c.ViewportH / 2})
}

// ScreenToWorld is the inverse of WorldToScreen: for any p,
// ScreenToWorld(WorldToScreen(p)) == p within floating-point epsilon
// (spec.md §8 property 4).
func (c *Camera) ScreenToWorld(p math2d.Vec2) math2d.Vec2 {
	centered := p.Sub(math2d.Vec2{X: c.ViewportW / 2, Y: c.ViewportH / 2})
	unzoomed := centered.Scale(1 / c.Zoom)
	return unzoomed.Add(c.Position)
}

// VisibleBounds returns the world-space rectangle the viewport currently
// shows, used for tile culling and frustum-style entity culling.
func (c *Camera) VisibleBounds() math2d.AABB {
	half := math2d.Vec2{X: c.ViewportW / 2 / c.Zoom, Y: c.ViewportH / 2 / c.Zoom}
	return math2d.AABB{Min: c.Position.Sub(half), Max: c.Position.Add(half)}
}

// Follow sets a smoothing target; call Update each tick to advance
// toward it.
func (c *Camera) Follow(target math2d.Vec2) {
	c.followTarget = target
	c.hasFollowTarget = true
}

// StopFollow clears any follow target set via Follow.
func (c *Camera) StopFollow() {
	c.hasFollowTarget = false
}

// Update advances an active follow target using exponential smoothing:
// half-life ~= ln(2)/smoothing seconds. Stable at dt=0 (a no-op), per
// spec.md §4.5.
func (c *Camera) Update(smoothing, dt float64) {
	if !c.hasFollowTarget || dt <= 0 {
		return
	}
	t := 1 - math.Exp(-smoothing*dt)
	c.Position = c.Position.Lerp(c.followTarget, t)
}

// ClampToBounds constrains the camera center so VisibleBounds never
// exits the configured clamp rectangle. If the map is smaller than the
// viewport on an axis, the camera centers on the map along that axis.
func (c *Camera) ClampToBounds() {
	if !c.hasClampRect {
		return
	}
	half := math2d.Vec2{X: c.ViewportW / 2 / c.Zoom, Y: c.ViewportH / 2 / c.Zoom}
	rect := c.clampRect

	c.Position.X = clampAxis(c.Position.X, half.X, rect.Min.X, rect.Max.X)
	c.Position.Y = clampAxis(c.Position.Y, half.Y, rect.Min.Y, rect.Max.Y)
}

func clampAxis(pos, half, lo, hi float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return math2d.Clamp(pos, lo+half, hi-half)
}
