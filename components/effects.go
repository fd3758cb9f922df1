package components

import (
	"image/color"

	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// FlashData tracks a hit flash on a turret
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ParticleData is a short-lived spark drawn as a projected point.
type ParticleData struct {
	Pos    vector.Vector
	Vel    vector.Vector // World units per frame
	MaxTTL int
	Color  color.RGBA
	Size   float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// RadarBlipData marks a hit on the radar.
type RadarBlipData struct {
	X, Y   float64
	MaxTTL int
}

var RadarBlip = donburi.NewComponentType[RadarBlipData]()
