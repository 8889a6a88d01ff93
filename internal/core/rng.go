package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Palette returns n opaque colors with channels drawn from [0, 255).
// The same seed always yields the same palette.
func (r *RNG) Palette(n int) []Pixel {
	Require(n >= 0, "palette size %d must not be negative", n)
	out := make([]Pixel, n)
	for i := range out {
		out[i] = Opaque(r.Uint8n(255), r.Uint8n(255), r.Uint8n(255))
	}
	return out
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
