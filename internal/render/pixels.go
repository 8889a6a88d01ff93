package render

import (
	"image"

	"raycaster/internal/core"
)

// FillRGBA converts packed pixels into an RGBA byte stream in buf, which must
// hold 4 bytes per pixel.
func FillRGBA(buf []byte, pixels []core.Pixel) {
	core.Require(len(buf) == 4*len(pixels), "rgba buffer holds %d bytes, need %d", len(buf), 4*len(pixels))
	for i, p := range pixels {
		base := i * 4
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = core.Unpack(p)
	}
}

// Image copies the framebuffer into a standard library image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	FillRGBA(img.Pix, fb.pix)
	return img
}
