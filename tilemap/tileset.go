package tilemap

import (
	"github.com/hearthlight/engine2d/math2d"
	"github.com/hearthlight/engine2d/render"
)

// Tileset maps a contiguous range of global tile ids onto a texture atlas,
// per spec.md §3: "UV for tile id i derived from (i - first_id) row-major."
type Tileset struct {
	Texture  *render.Texture
	FirstGID uint32
	Columns  int
	Rows     int
	TileW    int
	TileH    int
}

// Contains reports whether gid falls within this tileset's id range.
func (ts *Tileset) Contains(gid uint32) bool {
	if ts == nil || gid < ts.FirstGID {
		return false
	}
	local := gid - ts.FirstGID
	return int(local) < ts.Columns*ts.Rows
}

// UV returns the pixel-space UV rectangle for a global tile id, derived
// row-major from (gid - FirstGID).
func (ts *Tileset) UV(gid uint32) math2d.Rect {
	local := int(gid - ts.FirstGID)
	col := local % ts.Columns
	row := local / ts.Columns
	return math2d.Rect{
		X: float64(col * ts.TileW),
		Y: float64(row * ts.TileH),
		W: float64(ts.TileW),
		H: float64(ts.TileH),
	}
}
