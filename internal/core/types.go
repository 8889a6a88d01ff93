package core

// Vec is a point or direction in continuous map space.
type Vec struct {
	X, Y float64
}
