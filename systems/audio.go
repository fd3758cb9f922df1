package systems

import (
	"log"
	"sync"

	"github.com/automoto/laserbeam-mp/assets"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders and decodes every tone at startup.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Audio.ToneFrequencies {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("[audio] preload %d: %v", id, err)
		}
	}
}

// UpdateAudio plays queued SFX and drives the beam hum.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.Context = globalAudioContext

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	updateHum(audioData)
}

func updateHum(a *components.AudioData) {
	if a.HumTarget > 0 {
		a.HumVolume = a.HumTarget
	} else if a.HumHold == 0 {
		a.HumVolume *= 0.8
	}
	if a.HumHold > 0 {
		a.HumHold--
	}
	a.HumTarget = 0

	if a.HumPlayer == nil {
		if a.HumVolume <= 0.01 {
			return
		}
		player, err := globalAudioLoader.LoadHum()
		if err != nil {
			log.Printf("[audio] hum: %v", err)
			return
		}
		a.HumPlayer = player
		a.HumPlayer.Play()
	}

	a.HumPlayer.SetVolume(a.HumVolume * globalSFXVolume)
	if a.HumVolume <= 0.01 && a.HumHold == 0 {
		_ = a.HumPlayer.Close()
		a.HumPlayer = nil
	}
}

// StopHum silences the beam hum immediately, used when leaving a scene.
func StopHum(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if a.HumPlayer != nil {
		_ = a.HumPlayer.Close()
		a.HumPlayer = nil
	}
	a.HumVolume = 0
	a.HumTarget = 0
	a.HumHold = 0
}

// HumVolumeAt is how loud a beam ending distance units from the listener is.
func HumVolumeAt(distance float64) float64 {
	if cfg.Audio.HumFalloff <= 0 {
		return 1
	}
	return 1 / (1 + distance/cfg.Audio.HumFalloff)
}

// ReportBeamHum records a ticking beam end point. The loudest beam of the
// frame sets the hum volume.
func ReportBeamHum(e *ecs.ECS, end vector.Vector) {
	listener := gamemath.Zero3()
	if entry, ok := components.Camera.First(e.World); ok {
		listener = components.Camera.Get(entry).Target
	}

	a := GetOrCreateAudio(e)
	if v := HumVolumeAt(gamemath.Distance(listener, end)); v > a.HumTarget {
		a.HumTarget = v
	}
	a.HumHold = cfg.Audio.HumFadeFrames
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. It does not open the audio device.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
