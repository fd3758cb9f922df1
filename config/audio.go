package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBeamHum
	SoundBeamHit
	SoundTurretDestroyed
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultSFXVol   float64
	HumFrequency    float64 // Hz of the looping beam hum
	HumFalloff      float64 // World distance at which the hum reaches half volume
	HumFadeFrames   int     // Frames the hum keeps playing after the last beam tick
	ToneDurationsMs map[SoundID]int
	ToneFrequencies map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
		HumFrequency:  110,
		HumFalloff:    150,
		HumFadeFrames: 6,
		ToneDurationsMs: map[SoundID]int{
			SoundBeamHit:         60,
			SoundTurretDestroyed: 400,
			SoundMenuSelect:      40,
		},
		ToneFrequencies: map[SoundID]float64{
			SoundBeamHit:         880,
			SoundTurretDestroyed: 70,
			SoundMenuSelect:      660,
		},
	}
}
