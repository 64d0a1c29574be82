// Package asset implements the asset caches from SPEC_FULL.md §4.10: a
// reference-counted texture cache and a tilemap cache (tilemaps are shared
// by pointer, not reference-counted; there is no animation cache), with
// synchronous load outside the fixed-update loop, missing-texture fallback
// to a placeholder, and structured error logging.
//
// Grounded on ecs/render/registry.go + ecs/render/image_loader.go's
// package-level image cache and fallback-chain loader, generalized into
// a refcounted per-Manager cache instead of package globals, since spec.md
// §5's shared-resource policy makes the asset manager an explicit owner
// rather than an ambient singleton.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hearthlight/engine2d/render"
	"github.com/hearthlight/engine2d/tilemap"
)

// Manager owns texture and tilemap caches, keyed by the path they were
// loaded from. Handles are reference-counted; Release decrements and only
// frees GPU resources once no references remain, per spec.md §5.
type Manager struct {
	roots []string
	log   *slog.Logger

	textures map[string]*render.Texture
	tilemaps map[string]*tilemap.Tilemap
}

// NewManager creates a manager that searches roots, in order, when a
// bare asset key doesn't resolve directly. logger may be nil, in which
// case slog.Default() is used.
func NewManager(logger *slog.Logger, roots ...string) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		roots:    roots,
		log:      logger,
		textures: make(map[string]*render.Texture),
		tilemaps: make(map[string]*tilemap.Tilemap),
	}
}

func (m *Manager) candidatePaths(key string) []string {
	paths := []string{key}
	for _, root := range m.roots {
		paths = append(paths, filepath.Join(root, key))
	}
	return paths
}

// LoadTexture returns the cached texture for key, retaining a reference,
// or decodes it from disk (PNG/JPEG) on first request. A load failure is
// logged with the path and reason and a magenta placeholder is returned
// instead of an error, per spec.md §7 ("missing texture -> magenta
// placeholder"); synchronous file I/O here is only safe outside the fixed-
// update loop, per spec.md §5.
func (m *Manager) LoadTexture(key string) *render.Texture {
	if tex, ok := m.textures[key]; ok {
		return tex.Retain()
	}

	tex, err := m.decodeTexture(key)
	if err != nil {
		m.log.Warn("asset: texture load failed, substituting placeholder",
			"path", key, "reason", err.Error())
		return render.MagentaPlaceholder()
	}
	m.textures[key] = tex
	return tex
}

func (m *Manager) decodeTexture(key string) (*render.Texture, error) {
	var lastErr error
	for _, p := range m.candidatePaths(key) {
		data, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			lastErr = fmt.Errorf("decoding %s: %w", p, err)
			continue
		}
		return textureFromImage(img)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate path found for %q", key)
	}
	return nil, lastErr
}

// ReleaseTexture releases one reference to the texture cached under key,
// removing it from the cache once its ref count reaches zero.
func (m *Manager) ReleaseTexture(key string) {
	tex, ok := m.textures[key]
	if !ok {
		return
	}
	if tex.Release() {
		delete(m.textures, key)
	}
}

// LoadTilemap returns the cached tilemap for key or parses it from disk.
// Tilemaps are not reference-counted the way textures are, since a
// Tilemap has no GPU-side resource to free; re-requesting the same key
// returns the same pointer so callers share tileset registrations.
func (m *Manager) LoadTilemap(key string) (*tilemap.Tilemap, error) {
	if tm, ok := m.tilemaps[key]; ok {
		return tm, nil
	}
	var lastErr error
	for _, p := range m.candidatePaths(key) {
		tm, err := tilemap.LoadTilemapJSON(p)
		if err != nil {
			lastErr = err
			continue
		}
		m.tilemaps[key] = tm
		return tm, nil
	}
	m.log.Error("asset: tilemap load failed", "path", key, "reason", errString(lastErr))
	return nil, lastErr
}

func errString(err error) string {
	if err == nil {
		return "no candidate path found"
	}
	return err.Error()
}
