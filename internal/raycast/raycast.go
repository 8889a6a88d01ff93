// Package raycast marches rays through a world.Map in fixed steps.
package raycast

import (
	"math"

	"raycaster/internal/core"
	"raycaster/internal/world"
)

// Ray describes a single march: where it starts, where it points, how far
// each sample advances and when to give up.
type Ray struct {
	Origin      core.Vec
	Angle       float64
	Step        float64
	MaxDistance float64
}

// Hit is the outcome of a march. When Hit is false the ray left the map or ran
// out of range; Distance then holds the last sampled t and WallType is -1.
type Hit struct {
	Hit      bool
	Distance float64
	WallType int
	X, Y     float64
}

// March advances a sample point from the ray origin until it enters a wall,
// leaves the map, or reaches MaxDistance. An origin inside a wall hits at t=0.
func March(m *world.Map, r Ray) Hit {
	core.Require(r.Step > 0, "ray step %v must be positive", r.Step)
	dx, dy := math.Cos(r.Angle), math.Sin(r.Angle)
	t := 0.0
	for ; t < r.MaxDistance; t += r.Step {
		x := r.Origin.X + t*dx
		y := r.Origin.Y + t*dy
		if !m.Contains(x, y) {
			return Hit{Distance: t, WallType: -1, X: x, Y: y}
		}
		if c := m.CellOf(x, y); c.IsWall() {
			return Hit{Hit: true, Distance: t, WallType: c.Type(), X: x, Y: y}
		}
	}
	return Hit{Distance: t, WallType: -1, X: r.Origin.X + t*dx, Y: r.Origin.Y + t*dy}
}

// Trace calls visit for every sample March would take along r up to and
// including distance until. The t sequence is the same one March uses.
func Trace(r Ray, until float64, visit func(x, y float64)) {
	core.Require(r.Step > 0, "ray step %v must be positive", r.Step)
	dx, dy := math.Cos(r.Angle), math.Sin(r.Angle)
	for t := 0.0; t < r.MaxDistance && t <= until; t += r.Step {
		visit(r.Origin.X+t*dx, r.Origin.Y+t*dy)
	}
}

// SlabHeight projects a hit distance into a wall slab height in pixels. It is
// a plain inverse-distance rule without cosine correction, so edge columns
// show a slight fisheye.
func SlabHeight(viewportHeight int, distance float64) float64 {
	if distance <= 0 {
		return math.Inf(1)
	}
	return float64(viewportHeight) / distance
}
