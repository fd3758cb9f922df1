package systems

import (
	"fmt"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// CycleSFXVolume steps the volume to the next configured level.
func CycleSFXVolume(s *components.SettingsData) {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return
	}
	next := 0
	for i, v := range steps {
		if v > s.SFXVolume+1e-9 {
			next = i
			break
		}
	}
	s.SFXVolume = steps[next]
	SetSFXVolume(s.SFXVolume)
}

// CycleRadarRange steps to the next radar range.
func CycleRadarRange(s *components.SettingsData) {
	if n := len(cfg.Settings.RadarRanges); n > 0 {
		s.RadarRangeIndex = (s.RadarRangeIndex + 1) % n
	}
}

// CycleResolution steps to the next window size.
func CycleResolution(s *components.SettingsData) {
	if n := len(cfg.Settings.Resolutions); n > 0 {
		s.ResolutionIndex = (s.ResolutionIndex + 1) % n
	}
}

func VolumeLabel(s *components.SettingsData) string {
	if s.SFXVolume <= 0 {
		return "Off"
	}
	return fmt.Sprintf("%d%%", int(s.SFXVolume*100+0.5))
}

func RadarRangeLabel(s *components.SettingsData) string {
	return fmt.Sprintf("%.0f", RadarRange(s.RadarRangeIndex))
}

func ResolutionLabel(s *components.SettingsData) string {
	i := clampIndex(s.ResolutionIndex, len(cfg.Settings.Resolutions))
	if len(cfg.Settings.Resolutions) == 0 {
		return "-"
	}
	return cfg.Settings.Resolutions[i].Label
}

// ApplyWindow resizes the window to the selected resolution unless
// fullscreen.
func ApplyWindow(s *components.SettingsData) {
	if s.Fullscreen || len(cfg.Settings.Resolutions) == 0 {
		return
	}
	res := cfg.Settings.Resolutions[clampIndex(s.ResolutionIndex, len(cfg.Settings.Resolutions))]
	ebiten.SetWindowSize(res.Width, res.Height)
}
