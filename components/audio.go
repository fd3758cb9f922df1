package components

import (
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	HumPlayer  *audio.Player
	SFXVolume  float64 // 0.0 - 1.0
	HumVolume  float64 // Current hum volume before SFXVolume is applied
	HumTarget  float64 // Loudest beam heard this frame
	HumHold    int     // Frames left before the hum fades without new beam ticks
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
