package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteBatcher groups sprites by texture and emits one indexed draw call
// per group: four vertices and six indices (two triangles) per sprite.
// Grounded on the batching algorithm in spec.md §4.4, adapted onto
// ebiten's DrawTriangles as the concrete GPU draw primitive.
type SpriteBatcher struct {
	target   *ebiten.Image
	capacity int // max vertices per group before a forced flush

	vertices []ebiten.Vertex
	indices  []uint16
	current  *Texture

	drawCalls int
	filter    ebiten.Filter
}

// DefaultBatchVertexCapacity bounds a single group's vertex buffer before
// the batcher flushes and starts a new draw call mid-group, per spec.md
// §4.4 ("maintains a vertex buffer with a capacity ceiling").
const DefaultBatchVertexCapacity = 4096

// NewSpriteBatcher creates a batcher with the given vertex capacity per
// flush. A non-positive capacity uses DefaultBatchVertexCapacity.
func NewSpriteBatcher(capacity int) *SpriteBatcher {
	if capacity <= 0 {
		capacity = DefaultBatchVertexCapacity
	}
	return &SpriteBatcher{capacity: capacity}
}

// Begin points the batcher at a new draw target for this frame's pass.
func (b *SpriteBatcher) Begin(target *ebiten.Image) {
	b.target = target
	b.current = nil
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.drawCalls = 0
}

// DrawCalls reports how many GPU draw calls the batcher issued since the
// last Begin, for frame statistics.
func (b *SpriteBatcher) DrawCalls() int { return b.drawCalls }

// Add appends one sprite's quad to the current group, transforming its
// world-space corners by u.ViewProjection. Missing textures are skipped
// per spec.md §4.4's failure mode ("do not abort the frame").
func (b *SpriteBatcher) Add(s Sprite, u Uniforms) {
	if s.Texture == nil {
		return
	}
	if b.current != nil && b.current != s.Texture {
		b.Flush()
	}
	if len(b.vertices)+4 > b.capacity {
		b.Flush()
	}
	b.current = s.Texture

	quad := s.ToQuad()
	uv := s.UVQuad()
	col := s.Tint.Bytes()
	r := float32(col[0]) / 255
	g := float32(col[1]) / 255
	bl := float32(col[2]) / 255
	a := float32(col[3]) / 255

	base := uint16(len(b.vertices))
	for i := 0; i < 4; i++ {
		p := u.ViewProjection.TransformPoint(quad[i])
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   float32(uv[i].X),
			SrcY:   float32(uv[i].Y),
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		})
	}
	// Two triangles: (0,1,2) and (0,2,3), matching the quad winding order
	// established in Sprite.ToQuad (TL, TR, BR, BL).
	b.indices = append(b.indices,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
}

// Flush issues the pending draw call for the current texture group, if
// any, and clears the vertex/index buffers so the next group can start.
func (b *SpriteBatcher) Flush() {
	if len(b.vertices) == 0 || b.current == nil || b.target == nil {
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		return
	}
	opts := &ebiten.DrawTrianglesOptions{
		Filter: b.current.filter,
	}
	b.target.DrawTriangles(b.vertices, b.indices, b.current.Image(), opts)
	b.drawCalls++
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
