package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"raycaster/internal/core"
	"raycaster/internal/scene"
	"raycaster/internal/world"
)

// Config represents the command-line parameters shared by every front end.
type Config struct {
	Map           string
	FramesPerTurn int
	Settings      map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Map: "reference", FramesPerTurn: 360, Settings: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Map, "map", c.Map, "built-in map name ("+strings.Join(world.Names(), ", ")+") or path to a JSON map file")
	fs.IntVar(&c.FramesPerTurn, "turn", c.FramesPerTurn, "frames per full turn of the viewer")
	fs.Func("set", "render setting as key=value (w, h, overlay, cone, marker, step, max_distance, fov, palette, seed, workers); repeatable", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		c.Settings[key] = value
		return nil
	})
}

// Scene resolves the map and builds a renderer plus the animation driver.
// Map files that carry a palette override the seeded one.
func (c *Config) Scene() (*scene.Renderer, scene.Animator, error) {
	cfg := scene.FromMap(c.Settings)
	m, palette, builtin, err := c.loadMap()
	if err != nil {
		return nil, scene.Animator{}, err
	}
	if palette == nil {
		palette = cfg.Palette()
	}
	if m.WallTypes() > len(palette) {
		return nil, scene.Animator{}, fmt.Errorf("map %q uses %d wall types but the palette has %d colors", m.Name, m.WallTypes(), len(palette))
	}
	start := scene.StartPose
	if !builtin || c.Map != "reference" {
		start = scene.Pose{X: float64(m.Width()) / 2, Y: float64(m.Height()) / 2}
	}
	return scene.NewRenderer(m, palette, cfg), scene.NewAnimator(start, c.FramesPerTurn), nil
}

func (c *Config) loadMap() (*world.Map, []core.Pixel, bool, error) {
	if m, ok := world.Builtin(c.Map); ok {
		return m, nil, true, nil
	}
	if _, err := os.Stat(c.Map); err != nil {
		return nil, nil, false, fmt.Errorf("map %q is neither a built-in nor a readable file: %w", c.Map, err)
	}
	m, palette, err := world.LoadMap(c.Map)
	return m, palette, false, err
}
