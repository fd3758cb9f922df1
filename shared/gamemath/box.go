package gamemath

import "github.com/kvartborg/vector"

// Box is an axis-aligned bounding box.
type Box struct {
	Min vector.Vector
	Max vector.Vector
}

// BoxAround builds a box from a center and half extents.
func BoxAround(center, half vector.Vector) Box {
	return Box{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() vector.Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extents returns Max - Min.
func (b Box) Extents() vector.Vector {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p vector.Vector) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}
