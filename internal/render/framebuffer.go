package render

import "raycaster/internal/core"

// MaxDimension bounds each side of a framebuffer.
const MaxDimension = 1 << 14

// Framebuffer is an owned, fixed-size, row-major pixel buffer. Every access is
// bounds-checked; violations panic with core.ContractViolation instead of
// clipping.
type Framebuffer struct {
	w, h int
	pix  []core.Pixel
}

// NewFramebuffer allocates a w*h buffer filled with fill.
func NewFramebuffer(w, h int, fill core.Pixel) *Framebuffer {
	core.Require(w > 0 && h > 0 && w <= MaxDimension && h <= MaxDimension,
		"framebuffer size %dx%d outside 1..%d", w, h, MaxDimension)
	fb := &Framebuffer{w: w, h: h, pix: make([]core.Pixel, w*h)}
	fb.Clear(fill)
	return fb
}

// Width returns the number of columns.
func (fb *Framebuffer) Width() int { return fb.w }

// Height returns the number of rows.
func (fb *Framebuffer) Height() int { return fb.h }

// Pixels exposes the backing slice, row-major.
func (fb *Framebuffer) Pixels() []core.Pixel { return fb.pix }

// Clear overwrites every pixel with c.
func (fb *Framebuffer) Clear(c core.Pixel) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// At returns the pixel at (col, row).
func (fb *Framebuffer) At(col, row int) core.Pixel {
	fb.requireInside(col, row)
	return fb.pix[col+row*fb.w]
}

// SetPixel writes c at (col, row).
func (fb *Framebuffer) SetPixel(col, row int, c core.Pixel) {
	fb.requireInside(col, row)
	fb.pix[col+row*fb.w] = c
}

// FillRect writes c into the w*h rectangle whose top-left corner is
// (col, row). The whole rectangle must lie inside the buffer; nothing is
// written when it does not.
func (fb *Framebuffer) FillRect(col, row, w, h int, c core.Pixel) {
	core.Require(w >= 0 && h >= 0, "rect size %dx%d is negative", w, h)
	core.Require(col >= 0 && row >= 0 && w <= fb.w-col && h <= fb.h-row,
		"rect (%d,%d %dx%d) exceeds framebuffer %dx%d", col, row, w, h, fb.w, fb.h)
	for y := row; y < row+h; y++ {
		line := fb.pix[y*fb.w+col : y*fb.w+col+w]
		for i := range line {
			line[i] = c
		}
	}
}

func (fb *Framebuffer) requireInside(col, row int) {
	core.Require(col >= 0 && col < fb.w && row >= 0 && row < fb.h,
		"pixel (%d,%d) outside framebuffer %dx%d", col, row, fb.w, fb.h)
}
