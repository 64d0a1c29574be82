package components

import "github.com/hearthlight/engine2d/math2d"

// Velocity is an entity's current world-space velocity in units/second,
// integrated into Transform.Position by a motion system each fixed tick.
type Velocity struct {
	Value math2d.Vec2
}

// ZeroX and ZeroY clear one axis, used by collision resolution to stop
// motion along the MTV axis (spec.md §4.7 step 2).
func (v *Velocity) ZeroX() { v.Value.X = 0 }
func (v *Velocity) ZeroY() { v.Value.Y = 0 }

// Collider is an entity's collision volume: an offset and half-extent
// relative to its Transform.Position, plus the solid/trigger flags spec.md
// §4.7's resolution protocol dispatches on.
type Collider struct {
	Offset      math2d.Vec2
	HalfExtents math2d.Vec2
	Solid       bool
	Trigger     bool
}

// AABB returns the world-space bounding box for this collider given the
// entity's current world position.
func (c *Collider) AABB(worldPos math2d.Vec2) math2d.AABB {
	center := worldPos.Add(c.Offset)
	return math2d.AABB{
		Min: center.Sub(c.HalfExtents),
		Max: center.Add(c.HalfExtents),
	}
}
