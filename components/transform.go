// Package components holds the engine-level ECS component types shared by
// the frame orchestrator, renderer, and collision systems: transform,
// sprite, collider, velocity, and animation state.
//
// Grounded on the teacher's ecs/component package (Camera, Animation) and
// original_source's per-entity structs, adapted to this engine's sparse-
// set storage and generic ecs.Insert/Get accessors.
package components

import "github.com/hearthlight/engine2d/math2d"

// Transform is an entity's world-space position and facing. PrevPosition
// holds the position as of the previous fixed tick, resolving spec.md
// §9's alpha-interpolation open question in favor of option (a):
// interpolation-relevant components carry their previous value and the
// render system blends Position and PrevPosition by the frame alpha.
type Transform struct {
	Position     math2d.Vec2
	PrevPosition math2d.Vec2
	Rotation     float64
}

// Interpolated returns the position blended between PrevPosition and
// Position by alpha, per spec.md §4.1 step 4.
func (t *Transform) Interpolated(alpha float64) math2d.Vec2 {
	return t.PrevPosition.Lerp(t.Position, alpha)
}

// SyncPrev copies Position into PrevPosition. A system calls this once at
// the start of each fixed tick, before integrating motion, so PrevPosition
// always holds the position at the start of the tick that just ran.
func (t *Transform) SyncPrev() {
	t.PrevPosition = t.Position
}
