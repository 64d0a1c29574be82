// Package spatial implements the uniform-grid broad phase from spec.md
// §4.7: per-frame entity/AABB registration into fixed-size cells, deduped
// range queries, and pair enumeration for narrow-phase collision.
//
// No teacher or example repo carries an equivalent structure (the corpus
// leans on github.com/jakecoffman/cp's Chipmunk2D space for broad phase,
// which is a full physics engine dropped as a non-goal); this package is
// built directly from spec.md's algorithm description, in the style of
// the engine's other index/storage types (ecs.ComponentStorage).
package spatial

import (
	"math"

	"github.com/hearthlight/engine2d/ecs"
	"github.com/hearthlight/engine2d/math2d"
)

type cellKey struct{ x, y int }

// Grid is a uniform spatial hash over entity AABBs, rebuilt every frame
// (spec.md §4.7 invariant: "clear() is called before rebuild each frame;
// the grid does not persist across frames").
type Grid struct {
	cellSize float64
	cells    map[cellKey][]ecs.Entity
	bounds   map[ecs.Entity]math2d.AABB
}

// NewGrid creates a grid with the given cell size in world units. Spec
// guidance: choose 2-4x the average entity size.
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]ecs.Entity),
		bounds:   make(map[ecs.Entity]math2d.AABB),
	}
}

// Clear empties the grid. Callers rebuild from scratch every frame.
func (g *Grid) Clear() {
	for k := range g.cells {
		delete(g.cells, k)
	}
	for k := range g.bounds {
		delete(g.bounds, k)
	}
}

func (g *Grid) cellRange(box math2d.AABB) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(box.Min.X / g.cellSize))
	minY = int(math.Floor(box.Min.Y / g.cellSize))
	maxX = int(math.Floor((box.Max.X - epsilon) / g.cellSize))
	maxY = int(math.Floor((box.Max.Y - epsilon) / g.cellSize))
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return
}

// epsilon nudges an inclusive-max cell computation off an exact cell
// boundary, so an AABB whose Max lands exactly on a grid line isn't
// registered into the next cell over.
const epsilon = 1e-9

// Insert registers e into every cell its AABB overlaps, per spec.md
// §4.7's invariant.
func (g *Grid) Insert(e ecs.Entity, box math2d.AABB) {
	g.bounds[e] = box
	minX, minY, maxX, maxY := g.cellRange(box)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			key := cellKey{x, y}
			g.cells[key] = append(g.cells[key], e)
		}
	}
}

// Query returns the deduplicated set of entities registered in any cell
// overlapping bounds. The result is a candidate set: callers must still
// perform a narrow-phase AABB check.
func (g *Grid) Query(bounds math2d.AABB) []ecs.Entity {
	minX, minY, maxX, maxY := g.cellRange(bounds)
	seen := make(map[ecs.Entity]struct{})
	var out []ecs.Entity
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for _, e := range g.cells[cellKey{x, y}] {
				if _, ok := seen[e]; ok {
					continue
				}
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}
	return out
}

// Pair is an unordered candidate pair produced by BroadPhase, with A
// always the numerically smaller entity so a pair is comparable for
// deduplication.
type Pair struct {
	A, B ecs.Entity
}

func makePair(a, b ecs.Entity) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// BroadPhase emits every unordered entity pair sharing at least one cell,
// deduplicated with a visited-pair set (spec.md §4.7).
func (g *Grid) BroadPhase() []Pair {
	visited := make(map[Pair]struct{})
	var out []Pair
	for _, entities := range g.cells {
		for i := 0; i < len(entities); i++ {
			for j := i + 1; j < len(entities); j++ {
				if entities[i] == entities[j] {
					continue
				}
				p := makePair(entities[i], entities[j])
				if _, ok := visited[p]; ok {
					continue
				}
				visited[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}

// AABB returns the AABB last registered for e via Insert, and whether e
// is currently tracked.
func (g *Grid) AABB(e ecs.Entity) (math2d.AABB, bool) {
	b, ok := g.bounds[e]
	return b, ok
}
