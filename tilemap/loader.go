package tilemap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hearthlight/engine2d/math2d"
	"github.com/hearthlight/engine2d/render"
)

// jsonLayer mirrors one entry of the "layers" array in the on-disk schema
// documented in spec.md §4.6: a name, z-order, draw-order kind, visibility,
// and a row-major tile-id array of length width*height.
type jsonLayer struct {
	Name    string   `json:"name"`
	ZOrder  int      `json:"z_order"`
	Kind    string   `json:"kind"` // "below" or "above"
	Visible *bool    `json:"visible"`
	Tiles   []uint32 `json:"tiles"`
}

type jsonSpawn struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type jsonTriggerBounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonTrigger struct {
	Bounds      jsonTriggerBounds `json:"bounds"`
	TargetMap   string            `json:"target_map"`
	TargetSpawn string            `json:"target_spawn"`
}

// jsonTilemap is the root document shape from spec.md §4.6/§6:
// {width, height, tile_size, layers, collision, spawns, triggers}. It
// carries no tileset/texture data; callers register those separately with
// Tilemap.AddTileset.
type jsonTilemap struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	TileSize int           `json:"tile_size"`
	Layers   []jsonLayer   `json:"layers"`
	Collision []bool       `json:"collision"`
	Spawns   []jsonSpawn   `json:"spawns"`
	Triggers []jsonTrigger `json:"triggers"`
}

// LoadError names the file and field responsible for a rejected tilemap
// document, per spec.md §7's "Tilemap invalid" error taxonomy.
type LoadError struct {
	Path  string
	Field string
	Msg   string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("tilemap: invalid %s (field %q): %s", e.Path, e.Field, e.Msg)
}

// LoadTilemapJSON reads and validates a tilemap document from path. Layer
// tile arrays and the collision bitmap must each have exactly width*height
// entries; a mismatch fails with a *LoadError naming the offending field.
// Missing spawns/triggers arrays are treated as empty.
func LoadTilemapJSON(path string) (*Tilemap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: reading %s: %w", path, err)
	}

	var doc jsonTilemap
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Field: "<root>", Msg: err.Error()}
	}

	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, &LoadError{Path: path, Field: "width/height", Msg: "must be positive"}
	}
	if doc.TileSize <= 0 {
		return nil, &LoadError{Path: path, Field: "tile_size", Msg: "must be positive"}
	}

	cellCount := doc.Width * doc.Height

	if len(doc.Collision) != cellCount {
		return nil, &LoadError{
			Path: path, Field: "collision",
			Msg: fmt.Sprintf("expected %d entries, got %d", cellCount, len(doc.Collision)),
		}
	}

	layers := make([]TileLayer, 0, len(doc.Layers))
	for _, jl := range doc.Layers {
		if len(jl.Tiles) != cellCount {
			return nil, &LoadError{
				Path: path, Field: fmt.Sprintf("layers[%q].tiles", jl.Name),
				Msg: fmt.Sprintf("expected %d entries, got %d", cellCount, len(jl.Tiles)),
			}
		}
		kind := render.LayerBelowEntities
		switch jl.Kind {
		case "", "below":
			kind = render.LayerBelowEntities
		case "above":
			kind = render.LayerAboveEntities
		default:
			return nil, &LoadError{
				Path: path, Field: fmt.Sprintf("layers[%q].kind", jl.Name),
				Msg: fmt.Sprintf("unknown layer kind %q", jl.Kind),
			}
		}
		visible := true
		if jl.Visible != nil {
			visible = *jl.Visible
		}
		layers = append(layers, TileLayer{
			Name:    jl.Name,
			ZOrder:  jl.ZOrder,
			Visible: visible,
			Kind:    kind,
			Tiles:   jl.Tiles,
		})
	}

	solid := doc.Collision
	if solid == nil {
		solid = make([]bool, cellCount)
	}

	spawns := make([]SpawnPoint, 0, len(doc.Spawns))
	for _, js := range doc.Spawns {
		spawns = append(spawns, SpawnPoint{ID: js.ID, X: js.X, Y: js.Y})
	}

	triggers := make([]Trigger, 0, len(doc.Triggers))
	for _, jt := range doc.Triggers {
		triggers = append(triggers, Trigger{
			Bounds: math2d.NewAABB(jt.Bounds.X, jt.Bounds.Y, jt.Bounds.W, jt.Bounds.H),
			TargetMap:   jt.TargetMap,
			TargetSpawn: jt.TargetSpawn,
		})
	}

	return &Tilemap{
		Width:    doc.Width,
		Height:   doc.Height,
		TileSize: doc.TileSize,
		Layers:   layers,
		Solid:    solid,
		Spawns:   spawns,
		Triggers: triggers,
	}, nil
}
