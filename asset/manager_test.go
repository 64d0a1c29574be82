package asset

import (
	"os"
	"path/filepath"
	"testing"
)

const tilemapDoc = `{
  "width": 2, "height": 1, "tile_size": 16,
  "layers": [{"name": "ground", "z_order": 0, "kind": "below", "tiles": [1, 1]}],
  "collision": [true, false]
}`

func TestLoadTilemapResolvesUnderRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level1.json"), []byte(tilemapDoc), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m := NewManager(nil, dir)
	tm, err := m.LoadTilemap("level1.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Width != 2 || tm.Height != 1 {
		t.Fatalf("unexpected tilemap dimensions: %+v", tm)
	}
}

func TestLoadTilemapCachesByKey(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level1.json"), []byte(tilemapDoc), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m := NewManager(nil, dir)
	first, err := m.LoadTilemap("level1.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.LoadTilemap("level1.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same cached pointer on repeat load")
	}
}

func TestLoadTilemapMissingReturnsError(t *testing.T) {
	m := NewManager(nil, t.TempDir())
	if _, err := m.LoadTilemap("does-not-exist.json"); err == nil {
		t.Fatalf("expected an error for a missing tilemap")
	}
}

func TestCandidatePathsChecksRootsInOrder(t *testing.T) {
	m := NewManager(nil, "assets", "mods/pack1")
	got := m.candidatePaths("tiles/grass.png")
	want := []string{
		"tiles/grass.png",
		filepath.Join("assets", "tiles/grass.png"),
		filepath.Join("mods/pack1", "tiles/grass.png"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: got %q want %q", i, got[i], want[i])
		}
	}
}
