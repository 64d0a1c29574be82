package components

import "github.com/hearthlight/engine2d/anim"

// AnimationCursor wraps an anim.Controller (active animation, elapsed
// time, speed, pause state) so a system can drive per-entity playback and
// write the sampled UV back into the entity's SpriteRenderer each tick.
type AnimationCursor struct {
	Controller *anim.Controller
}

// NewAnimationCursor returns a cursor with a fresh, unpaused controller.
func NewAnimationCursor() AnimationCursor {
	return AnimationCursor{Controller: anim.NewController()}
}
