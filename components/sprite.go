package components

import (
	"github.com/hearthlight/engine2d/math2d"
	"github.com/hearthlight/engine2d/render"
)

// SpriteRenderer holds the visual state a render system reads to build a
// render.Sprite each frame: texture reference, size/origin/tint, current
// UV (typically written by an AnimationCursor system), flip flags, and
// draw-order fields.
type SpriteRenderer struct {
	Texture *render.Texture

	Size   math2d.Vec2
	Origin math2d.Vec2
	Scale  math2d.Vec2
	Tint   math2d.Color

	UV           math2d.Rect
	FlipX, FlipY bool

	ZOrder      int
	YSortOffset float64 // added to the entity's Y position for sort purposes
	Visible     bool
}

// NewSpriteRenderer returns a SpriteRenderer with sane defaults: full
// scale, opaque white tint, centered-bottom origin (common for top-down
// character sprites), and visible.
func NewSpriteRenderer(tex *render.Texture, size math2d.Vec2) SpriteRenderer {
	return SpriteRenderer{
		Texture: tex,
		Size:    size,
		Origin:  math2d.Vec2{X: 0.5, Y: 1},
		Scale:   math2d.Vec2{X: 1, Y: 1},
		Tint:    math2d.White,
		UV:      math2d.Rect{W: 1, H: 1},
		Visible: true,
	}
}

// ToSprite builds a transient render.Sprite for the given interpolated
// world position, per spec.md §4.4's per-frame sprite assembly.
func (s *SpriteRenderer) ToSprite(worldPos math2d.Vec2) render.Sprite {
	return render.Sprite{
		Texture:  s.Texture,
		Position: worldPos,
		Size:     s.Size,
		Origin:   s.Origin,
		Scale:    s.Scale,
		Tint:     s.Tint,
		UV:       s.UV,
		FlipX:    s.FlipX,
		FlipY:    s.FlipY,
		Layer:    render.LayerEntity,
		ZOrder:   s.ZOrder,
		YSort:    worldPos.Y + s.YSortOffset,
	}
}
