package gamemath

import "math"

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle folds an angle into [-pi, pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ApproachAngle turns from toward to by at most step radians along the
// shortest arc.
func ApproachAngle(from, to, step float64) float64 {
	diff := WrapAngle(to - from)
	if math.Abs(diff) <= step {
		return WrapAngle(to)
	}
	if diff > 0 {
		return WrapAngle(from + step)
	}
	return WrapAngle(from - step)
}
