package components

import "github.com/yohamta/donburi"

// NetInterpData stores interpolation state for smooth turret aim between
// server snapshots.
type NetInterpData struct {
	PrevYaw, PrevPitch     float64
	TargetYaw, TargetPitch float64
	T                      float64
	Initialized            bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
