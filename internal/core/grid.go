package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive
// dimensions are a contract violation.
func NewByteGrid(w, h int) *ByteGrid {
	Require(w > 0 && h > 0, "grid dimensions %dx%d must be positive", w, h)
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), panicking when out of range.
func (g *ByteGrid) At(x, y int) uint8 {
	Require(g.InBounds(x, y), "grid cell (%d,%d) outside %dx%d", x, y, g.W, g.H)
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y), panicking when out of range.
func (g *ByteGrid) Set(x, y int, v uint8) {
	Require(g.InBounds(x, y), "grid cell (%d,%d) outside %dx%d", x, y, g.W, g.H)
	g.data[g.Index(x, y)] = v
}
