package world

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"raycaster/internal/core"
)

// MapFile is the on-disk JSON form of a map.
type MapFile struct {
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Rows    []string `json:"rows"`
	Palette []string `json:"palette,omitempty"` // "#rrggbb" per wall type
}

// LoadMap reads a JSON map file. When the file carries a palette it is
// returned alongside the map and bounds the wall types; otherwise the palette
// is nil and up to ReferencePaletteSize wall types are accepted.
func LoadMap(path string) (*Map, []core.Pixel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	var mf MapFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	m, palette, err := mf.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return m, palette, nil
}

// Build validates the file contents and constructs the map.
func (mf *MapFile) Build() (*Map, []core.Pixel, error) {
	if len(mf.Rows) != mf.Height {
		return nil, nil, fmt.Errorf("rows array height mismatch: expected %d, got %d", mf.Height, len(mf.Rows))
	}
	for y, row := range mf.Rows {
		if len(row) != mf.Width {
			return nil, nil, fmt.Errorf("rows array width mismatch at row %d: expected %d, got %d", y, mf.Width, len(row))
		}
	}
	var palette []core.Pixel
	limit := ReferencePaletteSize
	if len(mf.Palette) > 0 {
		palette = make([]core.Pixel, len(mf.Palette))
		for i, hex := range mf.Palette {
			p, err := ParseHexColor(hex)
			if err != nil {
				return nil, nil, fmt.Errorf("palette entry %d: %w", i, err)
			}
			palette[i] = p
		}
		limit = len(palette)
	}
	m, err := ParseLayout(mf.Width, mf.Height, strings.Join(mf.Rows, ""), limit)
	if err != nil {
		return nil, nil, err
	}
	m.Name = mf.Name
	return m, palette, nil
}

// ParseHexColor parses "#rrggbb" into an opaque pixel.
func ParseHexColor(s string) (core.Pixel, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return core.Opaque(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
