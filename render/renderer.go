package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hearthlight/engine2d/math2d"
)

// FrameStats reports what the renderer did during the last frame, mirroring
// the "frame statistics" half of spec.md §3's Frame clock entry.
type FrameStats struct {
	DrawCalls   int
	SpriteCount int
}

// Renderer drives the per-frame draw order documented in spec.md §4.4:
// clear, world pass (below layers, Y-sorted entities, above layers), UI
// pass with an identity view, then present (present itself is Ebitengine's
// responsibility once Draw returns).
//
// Grounded on the teacher's ecs/world_render.go RenderSystem dispatch,
// generalized into an explicit pass pipeline instead of an interface
// fan-out, since this engine's batching/sorting rules are shared across
// every draw source (tiles and entities alike) rather than per-system.
type Renderer struct {
	batcher *SpriteBatcher
	stats   FrameStats
}

// NewRenderer creates a renderer whose sprite batcher flushes every
// batchVertexCapacity vertices (0 uses DefaultBatchVertexCapacity).
func NewRenderer(batchVertexCapacity int) *Renderer {
	return &Renderer{batcher: NewSpriteBatcher(batchVertexCapacity)}
}

// BeginFrame clears the target with the given color (the day-night tinted
// clear color, per spec.md §4.4 step 1) and resets frame statistics.
func (r *Renderer) BeginFrame(screen *ebiten.Image, clear math2d.Color) {
	c := clear.Bytes()
	screen.Fill(rgbaColor(c))
	r.stats = FrameStats{}
}

// DrawWorld runs the world pass: it sorts the supplied sprite list
// in-place (tile-expanded below/above layers plus entity sprites, all
// tagged with their LayerKind) and issues one batched draw sequence
// through the camera's view-projection matrix.
func (r *Renderer) DrawWorld(screen *ebiten.Image, sprites []Sprite, viewProjection math2d.Mat4) {
	SortSprites(sprites)
	u := Uniforms{ViewProjection: viewProjection}
	r.batcher.Begin(screen)
	for _, s := range sprites {
		r.batcher.Add(s, u)
	}
	r.batcher.Flush()
	r.stats.DrawCalls += r.batcher.DrawCalls()
	r.stats.SpriteCount += len(sprites)
}

// DrawUI runs the UI pass with an identity view and pixel-space
// projection, per spec.md §4.4 step 4.
func (r *Renderer) DrawUI(screen *ebiten.Image, sprites []Sprite) {
	SortSprites(sprites)
	u := IdentityUniforms()
	r.batcher.Begin(screen)
	for _, s := range sprites {
		r.batcher.Add(s, u)
	}
	r.batcher.Flush()
	r.stats.DrawCalls += r.batcher.DrawCalls()
	r.stats.SpriteCount += len(sprites)
}

// EndFrame returns the accumulated stats for the frame just drawn.
func (r *Renderer) EndFrame() FrameStats {
	return r.stats
}

func rgbaColor(c [4]byte) rgba { return rgba{c[0], c[1], c[2], c[3]} }

// rgba adapts a packed color into the color.Color interface ebiten's
// Image.Fill expects, without pulling in image/color's premultiplication
// semantics anywhere else in this package.
type rgba [4]byte

func (c rgba) RGBA() (r, g, b, a uint32) {
	r = uint32(c[0]) * 0x101
	g = uint32(c[1]) * 0x101
	b = uint32(c[2]) * 0x101
	a = uint32(c[3]) * 0x101
	return
}
