package components

import "github.com/yohamta/donburi"

// SettingsData is the live client settings (singleton). Persisted with gdata.
type SettingsData struct {
	LastAddress     string
	PlayerName      string
	SFXVolume       float64
	RadarRangeIndex int
	ShowDebug       bool
	Fullscreen      bool
	ResolutionIndex int
	SelectedTurret  int
}

var Settings = donburi.NewComponentType[SettingsData]()
