// Package tilemap implements the static, layered tile grid from spec.md
// §3/§4.6: multi-layer tile ids, a per-cell solidity bitmap, spawn points,
// triggers, and JSON ingest.
//
// Grounded on original_source/crates/engine_render/src/tilemap.rs for
// solidity/culling semantics and the teacher's level.go for the JSON
// shape convention.
package tilemap

import (
	"math"

	"github.com/hearthlight/engine2d/math2d"
	"github.com/hearthlight/engine2d/render"
)

// TileLayer is one ordered layer of the map: a name, z-order, visibility
// flag, draw-order kind, and a row-major tile-id array of length W*H.
type TileLayer struct {
	Name    string
	ZOrder  int
	Visible bool
	Kind    render.LayerKind // LayerBelowEntities or LayerAboveEntities
	Tiles   []uint32
}

// SpawnPoint is a named world-space position, in pixels.
type SpawnPoint struct {
	ID string
	X  float64
	Y  float64
}

// Trigger is an AABB (in pixels) that points at another map and spawn.
type Trigger struct {
	Bounds      math2d.AABB
	TargetMap   string
	TargetSpawn string
}

// Tilemap is the full static level: dimensions in tiles, tile pixel size,
// ordered layers, a flat per-cell solidity bitmap, spawns, and triggers.
type Tilemap struct {
	Width, Height int
	TileSize      int

	Layers []TileLayer
	Solid  []bool // len == Width*Height; per cell, independent of the layers' tile ids

	Spawns   []SpawnPoint
	Triggers []Trigger

	tilesets []*Tileset
}

// AddTileset registers a tileset's global-id range for rendering. The
// JSON schema in spec.md §4.6/§6 does not itself carry tileset
// definitions — a host wires texture atlases to id ranges after loading.
func (t *Tilemap) AddTileset(ts *Tileset) {
	t.tilesets = append(t.tilesets, ts)
}

func (t *Tilemap) tilesetFor(gid uint32) *Tileset {
	if gid == 0 {
		return nil
	}
	for _, ts := range t.tilesets {
		if ts.Contains(gid) {
			return ts
		}
	}
	return nil
}

// PixelWidth and PixelHeight report the map's total size in pixels.
func (t *Tilemap) PixelWidth() float64  { return float64(t.Width * t.TileSize) }
func (t *Tilemap) PixelHeight() float64 { return float64(t.Height * t.TileSize) }

func (t *Tilemap) inBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

func (t *Tilemap) tileAt(layer *TileLayer, x, y int) uint32 {
	return layer.Tiles[y*t.Width+x]
}

// IsSolidCell reports whether the cell at (x, y) is solid. Cells outside
// [0,W)x[0,H) are treated as solid, per spec.md §4.6/§8 ("acts as an
// implicit wall").
func (t *Tilemap) IsSolidCell(x, y int) bool {
	if !t.inBounds(x, y) {
		return true
	}
	return t.Solid[y*t.Width+x]
}

// SolidTile pairs a cell coordinate with its world-space AABB.
type SolidTile struct {
	X, Y int
	AABB math2d.AABB
}

// QuerySolid returns every solid tile (including implicit out-of-bounds
// walls) whose AABB overlaps box, per spec.md §4.6's solidity query and
// scenario C in §8.
func (t *Tilemap) QuerySolid(box math2d.AABB) []SolidTile {
	ts := float64(t.TileSize)
	minX := int(math.Floor(box.Min.X / ts))
	maxX := int(math.Ceil(box.Max.X/ts)) - 1
	minY := int(math.Floor(box.Min.Y / ts))
	maxY := int(math.Ceil(box.Max.Y/ts)) - 1

	var out []SolidTile
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !t.IsSolidCell(x, y) {
				continue
			}
			tileAABB := math2d.NewAABB(float64(x)*ts, float64(y)*ts, ts, ts)
			out = append(out, SolidTile{X: x, Y: y, AABB: tileAABB})
		}
	}
	return out
}

// GetSpawn returns the named spawn point.
func (t *Tilemap) GetSpawn(id string) (SpawnPoint, bool) {
	for _, s := range t.Spawns {
		if s.ID == id {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

// DefaultSpawn returns the first spawn point, or the map origin if none
// is defined.
func (t *Tilemap) DefaultSpawn() math2d.Vec2 {
	if len(t.Spawns) > 0 {
		return math2d.Vec2{X: t.Spawns[0].X, Y: t.Spawns[0].Y}
	}
	return math2d.Vec2{}
}

// CheckTrigger returns the first trigger whose bounds contain p.
func (t *Tilemap) CheckTrigger(p math2d.Vec2) (Trigger, bool) {
	for _, tr := range t.Triggers {
		if tr.Bounds.Contains(p) {
			return tr, true
		}
	}
	return Trigger{}, false
}

// VisibleSprites expands every visible tile within visibleBounds into a
// render.Sprite, applying the -1/+1 margin from spec.md §4.4 to avoid
// edge popping under sub-pixel camera motion. Layers with Visible == false
// or an all-zero tile array contribute zero sprites.
func (t *Tilemap) VisibleSprites(visibleBounds math2d.AABB) []render.Sprite {
	ts := float64(t.TileSize)
	minCol := int(math.Floor(visibleBounds.Min.X/ts)) - 1
	maxCol := int(math.Ceil(visibleBounds.Max.X/ts)) + 1
	minRow := int(math.Floor(visibleBounds.Min.Y/ts)) - 1
	maxRow := int(math.Ceil(visibleBounds.Max.Y/ts)) + 1

	minCol = clampInt(minCol, 0, t.Width-1)
	maxCol = clampInt(maxCol, 0, t.Width-1)
	minRow = clampInt(minRow, 0, t.Height-1)
	maxRow = clampInt(maxRow, 0, t.Height-1)

	var out []render.Sprite
	for li := range t.Layers {
		layer := &t.Layers[li]
		if !layer.Visible {
			continue
		}
		for y := minRow; y <= maxRow; y++ {
			for x := minCol; x <= maxCol; x++ {
				gid := t.tileAt(layer, x, y)
				if gid == 0 {
					continue
				}
				tileset := t.tilesetFor(gid)
				if tileset == nil {
					continue
				}
				out = append(out, render.Sprite{
					Texture:  tileset.Texture,
					Position: math2d.Vec2{X: float64(x) * ts, Y: float64(y) * ts},
					Size:     math2d.Vec2{X: ts, Y: ts},
					Scale:    math2d.Vec2{X: 1, Y: 1},
					Tint:     math2d.White,
					UV:       tileset.UV(gid),
					Layer:    layer.Kind,
					ZOrder:   layer.ZOrder,
				})
			}
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
