package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// CameraData is an orbit camera around Target.
type CameraData struct {
	Target   vector.Vector
	Distance float64
	Yaw      float64
	Pitch    float64

	// Shake offsets the eye for one frame; reset by UpdateCamera.
	ShakeX, ShakeY float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData stores active screen shake state
type ScreenShakeData struct {
	Intensity float64 // World units of offset at the start
	Duration  int     // Total frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
