package scene

import (
	"math"
	"strconv"

	"raycaster/internal/core"
)

// Config controls frame layout and ray marching.
type Config struct {
	Width  int
	Height int

	// Overlay splits the frame: the top-down map on the left half, the 3D
	// viewport on the right. Without it the viewport fills the frame.
	Overlay    bool
	DrawCone   bool
	MarkerSize int

	Step        float64
	MaxDistance float64
	FOV         float64

	Background core.Pixel
	ConeColor  core.Pixel

	PaletteSize int
	Seed        int64

	Workers int
}

// DefaultConfig returns the standard 1024x512 split-screen configuration.
func DefaultConfig() Config {
	return Config{
		Width:       1024,
		Height:      512,
		Overlay:     true,
		DrawCone:    true,
		MarkerSize:  5,
		Step:        0.01,
		MaxDistance: 20,
		FOV:         math.Pi / 3,
		Background:  core.Opaque(255, 255, 255),
		ConeColor:   core.Opaque(160, 160, 160),
		PaletteSize: 10,
		Seed:        1,
		Workers:     4,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["overlay"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Overlay = parsed
		}
	}
	if v, ok := cfg["cone"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DrawCone = parsed
		}
	}
	if v, ok := cfg["marker"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MarkerSize = parsed
		}
	}
	if v, ok := cfg["step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Step = parsed
		}
	}
	if v, ok := cfg["max_distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MaxDistance = parsed
		}
	}
	if v, ok := cfg["fov"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 2*math.Pi {
			c.FOV = parsed
		}
	}
	if v, ok := cfg["palette"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PaletteSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Palette generates the wall colors for this config's seed.
func (c Config) Palette() []core.Pixel {
	return core.NewRNG(c.Seed).Palette(c.PaletteSize)
}

// Parameters snapshots the render settings and the viewer pose for display.
func (c Config) Parameters(p Pose) core.ParameterSnapshot {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Viewer", Params: []core.Parameter{
			{Key: "x", Label: "X", Type: core.ParamTypeFloat, Value: f(p.X)},
			{Key: "y", Label: "Y", Type: core.ParamTypeFloat, Value: f(p.Y)},
			{Key: "heading", Label: "Heading", Type: core.ParamTypeFloat, Value: f(p.Heading), Description: "radians, 0 faces +x"},
		}},
		{Name: "Rays", Params: []core.Parameter{
			{Key: "fov", Label: "FOV", Type: core.ParamTypeFloat, Value: f(c.FOV)},
			{Key: "step", Label: "Step", Type: core.ParamTypeFloat, Value: f(c.Step)},
			{Key: "max_distance", Label: "Range", Type: core.ParamTypeFloat, Value: f(c.MaxDistance)},
			{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Workers)},
			{Key: "overlay", Label: "Overlay", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.Overlay)},
		}},
	}}
}
