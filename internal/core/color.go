package core

// Pixel is a packed RGBA color: R in the low byte, A in the high byte.
type Pixel uint32

// Pack combines four channel bytes into a Pixel.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(a)<<24 | Pixel(b)<<16 | Pixel(g)<<8 | Pixel(r)
}

// Opaque packs an RGB triple with full alpha.
func Opaque(r, g, b uint8) Pixel { return Pack(r, g, b, 0xFF) }

// Unpack splits a Pixel into its channel bytes.
func Unpack(p Pixel) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := Unpack(p)
	a = uint32(a8)
	a |= a << 8
	r = uint32(r8) * a / 0xFF
	g = uint32(g8) * a / 0xFF
	b = uint32(b8) * a / 0xFF
	return r, g, b, a
}
