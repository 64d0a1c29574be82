package math2d

import "math"

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
// Grounded on original_source/crates/engine_physics/src/lib.rs.
type AABB struct {
	Min, Max Vec2
}

// NewAABB builds an AABB from an origin and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

func (a AABB) Width() float64  { return a.Max.X - a.Min.X }
func (a AABB) Height() float64 { return a.Max.Y - a.Min.Y }
func (a AABB) Center() Vec2    { return a.Min.Add(a.Max).Scale(0.5) }

// Intersects reports whether a and b overlap. Touching edges (zero-width
// overlap) do not count as intersecting, matching the strict "<"/">"
// comparisons of the original AABB implementation.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Contains reports whether p lies within the closed box.
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Overlap returns the overlap rectangle between a and b. The caller must
// check Intersects first; a non-overlapping pair yields a degenerate or
// negative-size rectangle.
func (a AABB) Overlap(b AABB) AABB {
	return AABB{
		Min: Vec2{X: math.Max(a.Min.X, b.Min.X), Y: math.Max(a.Min.Y, b.Min.Y)},
		Max: Vec2{X: math.Min(a.Max.X, b.Max.X), Y: math.Min(a.Max.Y, b.Max.Y)},
	}
}

// Penetration returns the minimum translation vector that would move `a`
// out of `b` along the shorter overlap axis, with sign pointing from b to
// a. If a and b do not intersect, the zero vector is returned.
//
// Ties (x-overlap == y-overlap) resolve to the y axis, biasing stacking
// resolution for top-down movement per the collision resolution protocol.
func (a AABB) Penetration(b AABB) Vec2 {
	if !a.Intersects(b) {
		return Vec2{}
	}
	ov := a.Overlap(b)
	overlapX := ov.Width()
	overlapY := ov.Height()

	centerA := a.Center()
	centerB := b.Center()

	if overlapX < overlapY {
		sign := 1.0
		if centerA.X < centerB.X {
			sign = -1
		}
		return Vec2{X: overlapX * sign}
	}
	sign := 1.0
	if centerA.Y < centerB.Y {
		sign = -1
	}
	return Vec2{Y: overlapY * sign}
}

// Translated returns a copy of a shifted by d.
func (a AABB) Translated(d Vec2) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}
