package render

import (
	"errors"
	"math"
	"slices"
	"testing"

	"raycaster/internal/core"
)

var (
	white = core.Opaque(255, 255, 255)
	red   = core.Opaque(255, 0, 0)
)

func expectViolation(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected contract violation", name)
		}
		var cv core.ContractViolation
		if err, ok := r.(error); !ok || !errors.As(err, &cv) {
			t.Fatalf("%s: expected ContractViolation, got %T: %v", name, r, r)
		}
	}()
	fn()
}

func TestNewFramebufferFills(t *testing.T) {
	fb := NewFramebuffer(4, 3, red)
	if len(fb.Pixels()) != 12 {
		t.Fatalf("expected 12 pixels, got %d", len(fb.Pixels()))
	}
	for i, p := range fb.Pixels() {
		if p != red {
			t.Fatalf("pixel %d not initialised to fill", i)
		}
	}
}

func TestNewFramebufferRejectsBadSizes(t *testing.T) {
	expectViolation(t, "zero width", func() { NewFramebuffer(0, 4, white) })
	expectViolation(t, "negative height", func() { NewFramebuffer(4, -1, white) })
	expectViolation(t, "absurd", func() { NewFramebuffer(MaxDimension+1, 1, white) })
}

func TestFillRectRowMajor(t *testing.T) {
	fb := NewFramebuffer(5, 4, white)
	fb.FillRect(1, 2, 3, 2, red)
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			inside := col >= 1 && col < 4 && row >= 2 && row < 4
			got := fb.Pixels()[col+row*5]
			if inside && got != red || !inside && got != white {
				t.Fatalf("pixel (%d,%d) = %#x", col, row, uint32(got))
			}
			if fb.At(col, row) != got {
				t.Fatalf("At(%d,%d) disagrees with row-major index", col, row)
			}
		}
	}
}

func TestFillRectIdempotent(t *testing.T) {
	once := NewFramebuffer(8, 8, white)
	once.FillRect(2, 3, 4, 5, red)
	twice := NewFramebuffer(8, 8, white)
	twice.FillRect(2, 3, 4, 5, red)
	twice.FillRect(2, 3, 4, 5, red)
	if !slices.Equal(once.Pixels(), twice.Pixels()) {
		t.Fatal("filling the same rect twice changed the result")
	}
}

func TestFillRectFullAndEmpty(t *testing.T) {
	fb := NewFramebuffer(3, 3, white)
	fb.FillRect(0, 0, 3, 3, red)
	fb.FillRect(3, 3, 0, 0, white)
	for _, p := range fb.Pixels() {
		if p != red {
			t.Fatal("empty rect at the far corner must not write")
		}
	}
}

func TestFillRectBoundsContract(t *testing.T) {
	const w, h = 6, 4
	for col := 0; col <= w; col++ {
		for row := 0; row <= h; row++ {
			// Overrun by exactly one pixel in each direction.
			rw, rh := w-col+1, h-row
			fb := NewFramebuffer(w, h, white)
			expectViolation(t, "overrun x", func() { fb.FillRect(col, row, rw, rh, red) })
			if !slices.Equal(fb.Pixels(), NewFramebuffer(w, h, white).Pixels()) {
				t.Fatalf("rejected rect at (%d,%d) wrote pixels", col, row)
			}
			rw, rh = w-col, h-row+1
			expectViolation(t, "overrun y", func() { fb.FillRect(col, row, rw, rh, red) })
		}
	}
	fb := NewFramebuffer(w, h, white)
	expectViolation(t, "negative origin", func() { fb.FillRect(-1, 0, 1, 1, red) })
	expectViolation(t, "negative size", func() { fb.FillRect(0, 0, -1, 1, red) })
	// Sizes large enough to wrap col+w or row+h must still be rejected.
	expectViolation(t, "huge height", func() { fb.FillRect(0, 1, 1, math.MaxInt, red) })
	expectViolation(t, "huge width", func() { fb.FillRect(1, 0, math.MaxInt, 1, red) })
	if !slices.Equal(fb.Pixels(), NewFramebuffer(w, h, white).Pixels()) {
		t.Fatal("rejected huge rect wrote pixels")
	}
}

func TestPixelAccessBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2, white)
	fb.SetPixel(1, 1, red)
	if fb.At(1, 1) != red {
		t.Fatal("SetPixel did not stick")
	}
	expectViolation(t, "set", func() { fb.SetPixel(2, 0, red) })
	expectViolation(t, "get", func() { fb.At(0, 2) })
}

func TestImageMatchesPixels(t *testing.T) {
	fb := NewFramebuffer(2, 1, white)
	fb.SetPixel(1, 0, core.Pack(1, 2, 3, 4))
	img := fb.Image()
	if !slices.Equal(img.Pix, []byte{255, 255, 255, 255, 1, 2, 3, 4}) {
		t.Fatalf("unexpected rgba bytes %v", img.Pix)
	}
}
