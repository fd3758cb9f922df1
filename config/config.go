package config

import (
	"image/color"
	"math"

	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ServerConfig contains dedicated server defaults (overridable by flags)
type ServerConfig struct {
	Port            uint
	TickRate        int
	Name            string
	Version         string // Required client version (empty = accept any)
	AssetsDir       string
	Arena           string
	MaxClients      int
	ResetDelayTicks int // Ticks between an arena clearing and the turrets respawning
	CommandBuffer   int // Pending join/leave/fire commands before callbacks drop them
}

// LaserConfig contains laser spawn configuration
type LaserConfig struct {
	DatablockDir string
	MuzzleSlots  int     // Barrels per turret, fired alternately
	FadeTicks    int     // Client fades the beam out over its last ticks of life
	MinRange     float64 // Ranges below this are raised to it
}

// TurretConfig contains turret body dimensions and sweep behavior
type TurretConfig struct {
	HalfWidth     float64 // Half extent of the collision box on X and Y
	BarrelLength  float64 // Muzzle distance in front of the pivot
	BarrelSpread  float64 // Sideways offset of each barrel from the pivot
	SweepPitch    float64 // Radians, negative aims down
	DefaultHealth int
}

// NetConfig contains client connection defaults
type NetConfig struct {
	Address        string
	Version        string
	PlayerName     string
	EventBuffer    int // Buffered events per channel before new ones are dropped
	DatablockLimit int // Datablocks a client accepts from one server
}

// RenderConfig contains beam rendering configuration
type RenderConfig struct {
	FovY           float64 // Radians
	BeamTint       color.RGBA
	DebugSegments  bool // Draw the simulated muzzle->end segment on top of the beam
	TextureFrames  int  // Frames generated for procedural beam textures
	TextureSize    int
	ParticleTTL    int // Frames a beam particle lives (overridden by the tick's duration)
	ParticleStride float64
	Background     color.RGBA
	GridColor      color.RGBA
	WallColor      color.RGBA
	TurretColor    color.RGBA
	DeadColor      color.RGBA
}

// CameraConfig contains orbit camera configuration
type CameraConfig struct {
	Distance    float64
	MinDistance float64
	MaxDistance float64
	Pitch       float64 // Radians, negative looks down
	OrbitSpeed  float64 // Radians per frame while a key is held
	ZoomStep    float64
}

// RadarConfig controls the radar HUD
type RadarConfig struct {
	Range       float64 // World units covered by the radar radius
	Radius      float64 // Pixels
	BlipSize    float64
	ShowTurrets bool
	ShowLasers  bool
	ShowHits    bool

	BackgroundColor color.RGBA
	RingColor       color.RGBA
	TurretColor     color.RGBA
	DeadColor       color.RGBA
	LaserColor      color.RGBA
	HitColor        color.RGBA
	HitBlipFrames   int
}

// UIConfig contains HUD text configuration
type UIConfig struct {
	HUDMargin     float64
	TextColor     color.RGBA
	WarningColor  color.RGBA
	FontSize      float64
	SmallFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Connect straight to Net.Address
}

// Global configuration instances
var C *Config
var Server ServerConfig
var Laser LaserConfig
var Turret TurretConfig
var Net NetConfig
var Render RenderConfig
var Camera CameraConfig
var Radar RadarConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Server = ServerConfig{
		Port:            netconfig.DefaultPort,
		TickRate:        netconfig.TickRate,
		Name:            "Laserbeam Arena",
		AssetsDir:       "assets",
		Arena:           "arena",
		MaxClients:      16,
		ResetDelayTicks: netconfig.TickRate * 5,
		CommandBuffer:   64,
	}

	Laser = LaserConfig{
		DatablockDir: "datablocks",
		MuzzleSlots:  2,
		FadeTicks:    8,
		MinRange:     1,
	}

	Turret = TurretConfig{
		HalfWidth:     6,
		BarrelLength:  10,
		BarrelSpread:  3,
		SweepPitch:    -0.05,
		DefaultHealth: 10,
	}

	Net = NetConfig{
		Address:        "localhost:7373",
		Version:        netconfig.ProtoVersion,
		PlayerName:     "spectator",
		EventBuffer:    64,
		DatablockLimit: 64,
	}

	Render = RenderConfig{
		FovY:           math.Pi / 3,
		BeamTint:       color.RGBA{R: 255, G: 80, B: 60, A: 255},
		TextureFrames:  4,
		TextureSize:    32,
		ParticleTTL:    8,
		ParticleStride: 12,
		Background:     color.RGBA{R: 12, G: 12, B: 20, A: 255},
		GridColor:      color.RGBA{R: 30, G: 34, B: 48, A: 255},
		WallColor:      color.RGBA{R: 70, G: 80, B: 110, A: 255},
		TurretColor:    Cyan,
		DeadColor:      Grey,
	}

	Camera = CameraConfig{
		Distance:    260,
		MinDistance: 80,
		MaxDistance: 600,
		Pitch:       -0.7,
		OrbitSpeed:  0.03,
		ZoomStep:    12,
	}

	Radar = RadarConfig{
		Range:       400,
		Radius:      70,
		BlipSize:    3,
		ShowTurrets: true,
		ShowLasers:  true,
		ShowHits:    true,

		BackgroundColor: color.RGBA{R: 0, G: 20, B: 0, A: 160},
		RingColor:       color.RGBA{R: 0, G: 120, B: 40, A: 200},
		TurretColor:     BrightGreen,
		DeadColor:       Grey,
		LaserColor:      LightRed,
		HitColor:        Yellow,
		HitBlipFrames:   30,
	}

	UI = UIConfig{
		HUDMargin:     10,
		TextColor:     White,
		WarningColor:  Orange,
		FontSize:      16,
		SmallFontSize: 12,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
