package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LastAddress     string  `json:"lastAddress"`
	PlayerName      string  `json:"playerName"`
	SFXVolume       float64 `json:"sfxVolume"`
	RadarRangeIndex int     `json:"radarRangeIndex"`
	ShowDebug       bool    `json:"showDebug"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "laserbeam",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		LastAddress:     cfg.Net.Address,
		PlayerName:      cfg.Net.PlayerName,
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		RadarRangeIndex: 1,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses stored settings, keeping defaults for missing keys.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	def := DefaultSettings()
	settings := ToSaved(&def)
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ToSaved copies the persisted fields of the live settings.
func ToSaved(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		LastAddress:     s.LastAddress,
		PlayerName:      s.PlayerName,
		SFXVolume:       s.SFXVolume,
		RadarRangeIndex: s.RadarRangeIndex,
		ShowDebug:       s.ShowDebug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
}

// FromSaved merges saved values into the live settings, clamping indices to
// the configured option lists.
func FromSaved(dst *components.SettingsData, saved *SavedSettings) {
	if saved.LastAddress != "" {
		dst.LastAddress = saved.LastAddress
	}
	if saved.PlayerName != "" {
		dst.PlayerName = saved.PlayerName
	}
	dst.SFXVolume = gamemath.Clamp(saved.SFXVolume, 0, 1)
	dst.RadarRangeIndex = clampIndex(saved.RadarRangeIndex, len(cfg.Settings.RadarRanges))
	dst.ShowDebug = saved.ShowDebug
	dst.Fullscreen = saved.Fullscreen
	dst.ResolutionIndex = clampIndex(saved.ResolutionIndex, len(cfg.Settings.Resolutions))
}

func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(ToSaved(s))
}

// ApplySavedSettings applies loaded settings to the scene's Settings
// component and the audio volume.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	FromSaved(settings, saved)
	SetSFXVolume(settings.SFXVolume)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = gamemath.Clamp(saved.SFXVolume, 0, 1)

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
