package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// NearPlane is the closest depth Project accepts.
const NearPlane = 0.1

// CameraPose is the eye the client renders from.
type CameraPose struct {
	Position vector.Vector
	Yaw      float64
	Pitch    float64
	FovY     float64
}

// OrbitCamera places the eye distance units behind target, looking at it.
func OrbitCamera(target vector.Vector, distance, yaw, pitch, fovY float64) CameraPose {
	forward := YawPitch(target, yaw, pitch).Forward
	return CameraPose{
		Position: target.Sub(forward.Scale(distance)),
		Yaw:      yaw,
		Pitch:    pitch,
		FovY:     fovY,
	}
}

// Basis returns the eye orientation.
func (c CameraPose) Basis() Transform {
	return YawPitch(c.Position, c.Yaw, c.Pitch)
}

// Project maps a world point to screen pixels for a w x h viewport.
// ok is false when the point is behind the near plane.
func (c CameraPose) Project(p vector.Vector, w, h float64) (sx, sy, depth float64, ok bool) {
	basis := c.Basis()
	rel := p.Sub(c.Position)

	depth = Dot(rel, basis.Forward)
	if depth < NearPlane {
		return 0, 0, depth, false
	}

	focal := (h / 2) / math.Tan(c.FovY/2)
	sx = w/2 + Dot(rel, basis.Right)*focal/depth
	sy = h/2 - Dot(rel, basis.Up)*focal/depth
	return sx, sy, depth, true
}
