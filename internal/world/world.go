// Package world holds the static grid map the raycaster walks through.
package world

import (
	"fmt"
	"math"

	"raycaster/internal/core"
)

// Cell is the content of one map square: Empty or a wall type index.
type Cell int

// Empty marks a walkable square.
const Empty Cell = -1

// Wall returns the cell for wall type t.
func Wall(t int) Cell { return Cell(t) }

// IsWall reports whether the cell blocks rays.
func (c Cell) IsWall() bool { return c >= 0 }

// Type returns the wall type index; it is only meaningful for walls.
func (c Cell) Type() int { return int(c) }

// Map is an immutable rectangular grid of cells.
type Map struct {
	Name  string
	grid  *core.ByteGrid
	kinds int
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.W }

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.H }

// WallTypes returns one more than the largest wall type index in the map, so
// a palette of that size can color every wall.
func (m *Map) WallTypes() int { return m.kinds }

// CellAt returns the cell at (col, row). Coordinates outside the map are a
// contract violation.
func (m *Map) CellAt(col, row int) Cell {
	return Cell(m.grid.At(col, row)) - 1
}

// IsWall reports whether (col, row) holds a wall.
func (m *Map) IsWall(col, row int) bool { return m.CellAt(col, row).IsWall() }

// Contains reports whether the map-space point (x, y) lies inside the map.
func (m *Map) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(m.grid.W) && y < float64(m.grid.H)
}

// CellOf returns the cell holding a map-space point that Contains accepts.
func (m *Map) CellOf(x, y float64) Cell {
	return m.CellAt(int(math.Floor(x)), int(math.Floor(y)))
}

// Layout renders the map back into its textual form.
func (m *Map) Layout() string {
	buf := make([]byte, 0, m.grid.W*m.grid.H)
	for row := 0; row < m.grid.H; row++ {
		for col := 0; col < m.grid.W; col++ {
			c := m.CellAt(col, row)
			if !c.IsWall() {
				buf = append(buf, ' ')
				continue
			}
			buf = append(buf, byte('0'+c.Type()))
		}
	}
	return string(buf)
}

// ParseLayout builds a map from a row-major textual grid with no separators.
// A space is empty and the digits '0'..'9' are wall types 0..9. Every wall
// type must be below paletteSize.
func ParseLayout(w, h int, layout string, paletteSize int) (*Map, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", w, h)
	}
	if len(layout) != w*h {
		return nil, fmt.Errorf("layout has %d symbols, expected %dx%d=%d", len(layout), w, h, w*h)
	}
	m := &Map{grid: core.NewByteGrid(w, h)}
	cells := m.grid.Cells()
	for i := 0; i < len(layout); i++ {
		sym := layout[i]
		if sym == ' ' {
			continue
		}
		if sym < '0' || sym > '9' {
			return nil, fmt.Errorf("unmapped symbol %q at (%d,%d)", sym, i%w, i/w)
		}
		kind := int(sym - '0')
		if kind >= paletteSize {
			return nil, fmt.Errorf("wall type %d at (%d,%d) exceeds palette of %d", kind, i%w, i/w, paletteSize)
		}
		cells[i] = uint8(kind + 1)
		if kind+1 > m.kinds {
			m.kinds = kind + 1
		}
	}
	return m, nil
}

// MustParseLayout is ParseLayout for compiled-in layouts; a malformed layout
// is a contract violation.
func MustParseLayout(w, h int, layout string, paletteSize int) *Map {
	m, err := ParseLayout(w, h, layout, paletteSize)
	core.Require(err == nil, "map layout: %v", err)
	return m
}
