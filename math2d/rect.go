package math2d

// Rect is an axis-aligned rectangle expressed as origin + size, used for
// UV sub-regions and screen-space areas.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Flipped returns a copy of r with U and/or V endpoints swapped, used to
// mirror a sprite's UV rectangle without touching its geometry.
func (r Rect) Flipped(flipX, flipY bool) Rect {
	out := r
	if flipX {
		out.X, out.W = out.X+out.W, -out.W
	}
	if flipY {
		out.Y, out.H = out.Y+out.H, -out.H
	}
	return out
}
