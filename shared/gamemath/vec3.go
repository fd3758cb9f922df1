package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Vec3 builds a three component vector.
func Vec3(x, y, z float64) vector.Vector {
	return vector.Vector{x, y, z}
}

// Zero3 returns a fresh zero vector.
func Zero3() vector.Vector {
	return vector.Vector{0, 0, 0}
}

// Normalize returns the unit vector of v. A vector with no length stays zero.
func Normalize(v vector.Vector) vector.Vector {
	if v.Magnitude() == 0 {
		return Zero3()
	}
	return v.Unit()
}

// CrossUnit returns normalize(a x b).
func CrossUnit(a, b vector.Vector) vector.Vector {
	c, err := a.Cross(b)
	if err != nil {
		return Zero3()
	}
	return Normalize(c)
}

// ExactlyEqual compares component bits with ==. No tolerance is applied.
func ExactlyEqual(a, b vector.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Dot is the unclamped dot product of two 3 component vectors.
// vector.Vector.Dot clamps to [-1, 1] and is only valid for unit vectors.
func Dot(a, b vector.Vector) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Distance is |a - b|.
func Distance(a, b vector.Vector) float64 {
	return a.Sub(b).Magnitude()
}

// Lerp3 interpolates component-wise between a and b.
func Lerp3(a, b vector.Vector, t float64) vector.Vector {
	return a.Add(b.Sub(a).Scale(t))
}

// IsFinite reports whether every component is a real number.
func IsFinite(v vector.Vector) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
