package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"raycaster/internal/core"
)

// FrameName returns the zero-padded file name for an animation frame.
func FrameName(index int) string {
	return fmt.Sprintf("%05d.ppm", index)
}

// EncodePPM writes pixels as a binary P6 image. Alpha is dropped. The pixel
// count must equal w*h.
func EncodePPM(w io.Writer, pixels []core.Pixel, width, height int) error {
	core.Require(width > 0 && height > 0 && len(pixels) == width*height,
		"ppm buffer holds %d pixels, header says %dx%d", len(pixels), width, height)
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	var rgb [3]byte
	for _, p := range pixels {
		rgb[0], rgb[1], rgb[2], _ = core.Unpack(p)
		if _, err := bw.Write(rgb[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePPM creates path and encodes fb into it.
func WritePPM(path string, fb *Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePPM(f, fb.Pixels(), fb.Width(), fb.Height()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
