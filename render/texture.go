package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is an opaque GPU handle with known dimensions and sampler
// configuration, reference-counted per spec.md §3/§5. It is created from
// an RGBA8 byte buffer; the concrete backing store is an *ebiten.Image.
//
// Grounded on ecs/render/registry.go + ecs/render/image_loader.go of the
// teacher repo, generalized into a refcounted handle type instead of a
// bare package-level cache.
type Texture struct {
	image    *ebiten.Image
	width    int
	height   int
	filter   ebiten.Filter
	refCount int
}

// Filter selects the sampler's magnification behavior.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

func toEbitenFilter(f Filter) ebiten.Filter {
	if f == FilterLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

// NewTextureFromRGBA creates a Texture from a tightly packed RGBA8 buffer
// of length width*height*4. It is the concrete backend for the "bytes +
// dimensions in, texture handle out" contract in spec.md §4.4/§6.
func NewTextureFromRGBA(pixels []byte, width, height int, filter Filter) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: new texture: invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("render: new texture: expected %d bytes for %dx%d RGBA8, got %d", width*height*4, width, height, len(pixels))
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pixels)
	return &Texture{image: img, width: width, height: height, filter: toEbitenFilter(filter), refCount: 1}, nil
}

// Width and Height report the texture's pixel dimensions.
func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// Image exposes the backing *ebiten.Image for the batcher and any direct
// ebiten draw call. Callers must not mutate or dispose of it directly;
// use Release to give up a reference.
func (t *Texture) Image() *ebiten.Image { return t.image }

// Retain increments the reference count and returns t for chaining.
func (t *Texture) Retain() *Texture {
	t.refCount++
	return t
}

// Release decrements the reference count and disposes of the GPU image
// once no references remain. Returns true if this call freed the texture.
func (t *Texture) Release() bool {
	if t == nil || t.refCount <= 0 {
		return false
	}
	t.refCount--
	if t.refCount == 0 {
		t.image.Deallocate()
		return true
	}
	return false
}

// RefCount reports the current reference count, mostly for tests.
func (t *Texture) RefCount() int { return t.refCount }

// MagentaPlaceholder returns a small solid-magenta texture used to
// substitute for a missing asset per spec.md §7 ("missing texture ->
// magenta placeholder").
func MagentaPlaceholder() *Texture {
	const size = 8
	pixels := make([]byte, size*size*4)
	for i := 0; i < size*size; i++ {
		pixels[i*4+0] = 0xFF
		pixels[i*4+1] = 0x00
		pixels[i*4+2] = 0xFF
		pixels[i*4+3] = 0xFF
	}
	tex, err := NewTextureFromRGBA(pixels, size, size, FilterNearest)
	if err != nil {
		panic("render: magenta placeholder construction failed: " + err.Error())
	}
	return tex
}
