package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Transform is a rigid transform stored as matrix columns. Column 1 (Forward)
// is the facing direction and column 3 (Origin) the translation, matching the
// z-up, y-forward convention of the arena.
type Transform struct {
	Right   vector.Vector
	Forward vector.Vector
	Up      vector.Vector
	Origin  vector.Vector
}

// Identity returns a transform at the origin facing +Y.
func Identity() Transform {
	return Transform{
		Right:   Vec3(1, 0, 0),
		Forward: Vec3(0, 1, 0),
		Up:      Vec3(0, 0, 1),
		Origin:  Zero3(),
	}
}

// YawPitch builds a transform at origin, rotated by yaw about +Z and then
// pitched about the local right axis. Angles are radians.
func YawPitch(origin vector.Vector, yaw, pitch float64) Transform {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)

	forward := Vec3(sy*cp, cy*cp, sp)
	right := Vec3(cy, -sy, 0)
	up := Vec3(-sy*sp, -cy*sp, cp)

	return Transform{
		Right:   right,
		Forward: forward,
		Up:      up,
		Origin:  origin.Clone(),
	}
}

// Column returns column i (0..3) of the matrix.
func (t Transform) Column(i int) vector.Vector {
	switch i {
	case 0:
		return t.Right
	case 1:
		return t.Forward
	case 2:
		return t.Up
	default:
		return t.Origin
	}
}

// MulVector rotates v into world space without translating it.
func (t Transform) MulVector(v vector.Vector) vector.Vector {
	return t.Right.Scale(v[0]).
		Add(t.Forward.Scale(v[1])).
		Add(t.Up.Scale(v[2]))
}

// MulPoint maps a local point into world space.
func (t Transform) MulPoint(p vector.Vector) vector.Vector {
	return t.MulVector(p).Add(t.Origin)
}

// WithOrigin returns a copy of t translated to origin.
func (t Transform) WithOrigin(origin vector.Vector) Transform {
	t.Origin = origin.Clone()
	return t
}
