package scene

import "math"

// Pose is the viewer's position in map space and heading in radians.
type Pose struct {
	X, Y    float64
	Heading float64
}

// StartPose is where the demo animation begins.
var StartPose = Pose{X: 3.456, Y: 2.345, Heading: 1.523}

// Animator turns the viewer in place a fixed amount per frame.
type Animator struct {
	Start Pose
	Turn  float64
}

// NewAnimator spins a full circle over framesPerTurn frames.
func NewAnimator(start Pose, framesPerTurn int) Animator {
	if framesPerTurn <= 0 {
		framesPerTurn = 360
	}
	return Animator{Start: start, Turn: 2 * math.Pi / float64(framesPerTurn)}
}

// PoseAt returns the pose for a frame. The heading is advanced before each
// frame is drawn, so frame 0 is already one turn step past Start.
func (a Animator) PoseAt(frame int) Pose {
	p := a.Start
	p.Heading += float64(frame+1) * a.Turn
	return p
}
