package anim

import "github.com/hearthlight/engine2d/math2d"

// Controller drives one entity's active animation: it tracks elapsed
// time, playback speed, and pause state, and resets elapsed to zero only
// when the active animation's name changes (spec.md §4.8).
type Controller struct {
	active  *Animation
	elapsed float64
	Speed   float64
	Paused  bool
}

// NewController creates a controller at normal speed, unpaused, with no
// active animation.
func NewController() *Controller {
	return &Controller{Speed: 1}
}

// Play sets the active animation. Elapsed resets to zero only if the new
// animation's name differs from the currently active one.
func (c *Controller) Play(a *Animation) {
	if c.active != nil && a != nil && c.active.Name == a.Name {
		c.active = a
		return
	}
	c.active = a
	c.elapsed = 0
}

// Active returns the currently playing animation, or nil.
func (c *Controller) Active() *Animation { return c.active }

// Elapsed returns the controller's current elapsed time in seconds.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Advance moves elapsed forward by dt*Speed if not paused. A system calls
// this once per fixed tick (spec.md §4.8).
func (c *Controller) Advance(dt float64) {
	if c.Paused || c.active == nil {
		return
	}
	c.elapsed += dt * c.Speed
}

// CurrentUV samples the active animation at the controller's current
// elapsed time. ok is false if no animation is active.
func (c *Controller) CurrentUV() (rect math2d.Rect, ok bool) {
	if c.active == nil {
		return math2d.Rect{}, false
	}
	return Sample(c.active, c.elapsed), true
}
