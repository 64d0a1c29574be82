package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig is bootstrap configuration for the orchestrator and its
// backends, per SPEC_FULL.md §4.11 — distinct from the gameplay data
// (items/crops/dialogues) the base spec excludes; this is startup wiring
// only (window size, fixed step overrides, asset roots, grid cell size).
//
// Grounded on the teacher's prefabs/spec.go YAML-unmarshal convention,
// repurposed from a per-entity blueprint format to a single top-level
// document.
type EngineConfig struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Simulation struct {
		FixedStepOverride float64 `yaml:"fixed_step_override"`
		MaxTicksPerFrame  int     `yaml:"max_ticks_per_frame"`
	} `yaml:"simulation"`

	Spatial struct {
		CellSize float64 `yaml:"cell_size"`
	} `yaml:"spatial"`

	Assets struct {
		Root string `yaml:"root"`
	} `yaml:"assets"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultEngineConfig returns the config used when no file is supplied.
// LoadEngineConfig overlays a document onto it, so fields absent from the
// document keep these values; a field set to zero in the document stays
// zero.
func DefaultEngineConfig() EngineConfig {
	var c EngineConfig
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.Title = "engine2d"
	c.Simulation.FixedStepOverride = FixedStep
	c.Simulation.MaxTicksPerFrame = MaxTicksPerFrame
	c.Spatial.CellSize = 64
	c.Assets.Root = "assets"
	c.Logging.Level = "info"
	return c
}

// LoadEngineConfig reads a YAML document at path and overlays it onto
// DefaultEngineConfig: any field absent from the document keeps its
// default value. A missing file is not an error — the defaults are
// returned unchanged, since engine bootstrap must be able to run with no
// config file present.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("engine: reading config %s: %w", path, err)
	}

	overlay := cfg
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("engine: parsing config %s: %w", path, err)
	}
	return overlay, nil
}
