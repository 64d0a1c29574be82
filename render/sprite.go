package render

import (
	"github.com/hearthlight/engine2d/math2d"
)

// LayerKind determines whether a draw command sorts below or above the
// entity layer, per spec.md §3's Tile layer invariant.
type LayerKind int

const (
	LayerBelowEntities LayerKind = iota
	LayerEntity
	LayerAboveEntities
)

// Sprite is a transient drawable command: the renderer never stores these
// across frames (spec.md §3 "Sprite record"). It is assembled fresh each
// frame from ECS component state (see the components package) or from
// tilemap tile expansion (see the tilemap package).
type Sprite struct {
	Texture *Texture

	Position math2d.Vec2 // world position of the origin point
	Size     math2d.Vec2
	Origin   math2d.Vec2 // normalized pivot in [0,1]^2
	Rotation float64
	Scale    math2d.Vec2

	Tint math2d.Color
	UV   math2d.Rect // sub-region of Texture, in pixel or 0..1 units per backend

	FlipX, FlipY bool

	Layer  LayerKind
	ZOrder int
	YSort  float64 // world Y used as the tie-break within LayerEntity
	seq    int     // insertion order, used to keep sort stable
}

// Quad is the four world-space corners of a sprite after applying its
// origin, rotation, and scale, in the fixed winding order
// top-left, top-right, bottom-right, bottom-left.
type Quad [4]math2d.Vec2

// ToQuad implements the sprite-to-quad transform from spec.md §4.4:
// pivot offset = origin ⊙ size; each corner c is mapped to
// position + R(rotation) * ((c - pivot) ⊙ scale).
func (s Sprite) ToQuad() Quad {
	pivot := s.Origin.Mul(s.Size)
	corners := [4]math2d.Vec2{
		{X: 0, Y: 0},
		{X: s.Size.X, Y: 0},
		{X: s.Size.X, Y: s.Size.Y},
		{X: 0, Y: s.Size.Y},
	}
	var out Quad
	for i, c := range corners {
		local := c.Sub(pivot).Mul(s.Scale)
		rotated := local.Rotated(s.Rotation)
		out[i] = s.Position.Add(rotated)
	}
	return out
}

// UVQuad returns the four UV corners matching ToQuad's winding order, with
// flip flags applied by swapping the U and/or V endpoints.
func (s Sprite) UVQuad() Quad {
	uv := s.UV.Flipped(s.FlipX, s.FlipY)
	min, max := uv.Min(), uv.Max()
	return Quad{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
}

// sortKey packs (layer, z-order, y-sort, insertion) into a value that
// SortSprites compares lexicographically. Layer and Z dominate; y-sort
// only tie-breaks within the entity layer; insertion order is the final
// tie-break, guaranteeing stability (spec.md §8 property 8).
type sortKey struct {
	layer  LayerKind
	z      int
	y      float64
	seq    int
}

func (s Sprite) key() sortKey {
	return sortKey{layer: s.Layer, z: s.ZOrder, y: s.YSort, seq: s.seq}
}

func less(a, b sortKey) bool {
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	if a.z != b.z {
		return a.z < b.z
	}
	if a.layer == LayerEntity && a.y != b.y {
		return a.y < b.y
	}
	return a.seq < b.seq
}

// SortSprites sorts sprites in place by (layer kind, z-order, y-sort
// within the entity layer), stable with respect to the order sprites were
// appended to the batch (spec.md §4.4/§8).
func SortSprites(sprites []Sprite) {
	for i := range sprites {
		sprites[i].seq = i
	}
	// Insertion sort would be stable but O(n^2); stableSortByKey is a
	// merge sort that keeps ties in input order, and the explicit seq
	// tie-break above makes the result deterministic on its own.
	stableSortByKey(sprites)
}

func stableSortByKey(sprites []Sprite) {
	// Simple stable merge sort keyed on sortKey; avoids importing "sort"
	// package's SliceStable closures purely for style consistency with the
	// rest of the batching code, which is otherwise allocation-conscious.
	n := len(sprites)
	if n < 2 {
		return
	}
	buf := make([]Sprite, n)
	mergeSortSprites(sprites, buf, 0, n)
}

func mergeSortSprites(a, buf []Sprite, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSortSprites(a, buf, lo, mid)
	mergeSortSprites(a, buf, mid, hi)
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// Take from the left run unless the right run's key is strictly
		// smaller — ties resolve to the left (earlier-inserted) element,
		// which is what keeps the sort stable.
		if less(a[j].key(), a[i].key()) {
			buf[k] = a[j]
			j++
		} else {
			buf[k] = a[i]
			i++
		}
		k++
	}
	for i < mid {
		buf[k] = a[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = a[j]
		j++
		k++
	}
	copy(a[lo:hi], buf[lo:hi])
}
