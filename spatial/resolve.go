package spatial

import "github.com/hearthlight/engine2d/math2d"

// Collider is the narrow-phase input for ResolvePair: an AABB plus solid
// and trigger flags and the flag identifying which side actually moved
// this tick (spec.md §4.7 collision resolution protocol, step 2's
// "active" entity).
type Collider struct {
	Box     math2d.AABB
	Solid   bool
	Trigger bool
	Active  bool
}

// Outcome reports what ResolvePair decided for a pair.
type Outcome struct {
	Overlapping bool
	Displace    math2d.Vec2 // MTV to apply to the active collider; zero if none
	ZeroAxisX   bool        // true if velocity's X component should be zeroed
	ZeroAxisY   bool        // true if velocity's Y component should be zeroed
	TriggerHit  bool        // true if this pair is a solid/trigger contact
}

// ResolvePair implements spec.md §4.7's collision resolution protocol for
// one candidate pair already known to be a narrow-phase AABB overlap
// candidate (typically produced by Grid.BroadPhase).
//
// - both solid: displace the active collider by the MTV and report which
//   velocity axis to zero.
// - one trigger, one solid: report a trigger hit, no displacement.
// - neither solid: no-op (Overlapping may still be true).
func ResolvePair(a, b Collider) Outcome {
	if !a.Box.Intersects(b.Box) {
		return Outcome{}
	}

	if a.Solid && b.Trigger || a.Trigger && b.Solid {
		return Outcome{Overlapping: true, TriggerHit: true}
	}

	if !(a.Solid && b.Solid) {
		return Outcome{Overlapping: true}
	}

	active, passive := a, b
	if b.Active && !a.Active {
		active, passive = b, a
	}

	// Penetration(active, passive) points from passive toward active;
	// displacing the active collider by it resolves the overlap.
	mtv := active.Box.Penetration(passive.Box)

	return Outcome{
		Overlapping: true,
		Displace:    mtv,
		ZeroAxisX:   mtv.X != 0,
		ZeroAxisY:   mtv.Y != 0,
	}
}
