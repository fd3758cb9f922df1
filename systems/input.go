package systems

import (
	"log"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var selectKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// ArenaInput is one frame of arena controls.
type ArenaInput struct {
	Select      int // Turret index picked this frame, -1 for none
	Fire        bool
	ToggleDebug bool
	CycleRadar  bool
}

func readArenaInput() ArenaInput {
	in := ArenaInput{Select: -1}
	for i, key := range selectKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Select = i
		}
	}
	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.CycleRadar = inpututil.IsKeyJustPressed(ebiten.KeyR)
	return in
}

// FireControl turns arena input into fire requests. Barrels alternate per
// request.
type FireControl struct {
	send     func(msg any) error
	nextSlot int
}

func NewFireControl(send func(msg any) error) *FireControl {
	return &FireControl{send: send}
}

// Update is the ecs system func.
func (f *FireControl) Update(e *ecs.ECS) {
	f.Apply(e, readArenaInput())
}

// Apply handles one frame of input against the Settings component.
func (f *FireControl) Apply(e *ecs.ECS, in ArenaInput) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if in.Select >= 0 {
		settings.SelectedTurret = in.Select
	}
	if in.ToggleDebug {
		settings.ShowDebug = !settings.ShowDebug
	}
	if in.CycleRadar && len(cfg.Settings.RadarRanges) > 0 {
		settings.RadarRangeIndex = (settings.RadarRangeIndex + 1) % len(cfg.Settings.RadarRanges)
	}
	if !in.Fire {
		return
	}

	req := messages.FireRequest{TurretIndex: settings.SelectedTurret, Slot: f.nextSlot}
	if err := f.send(req); err != nil {
		log.Printf("[input] fire request: %v", err)
		return
	}
	if cfg.Laser.MuzzleSlots > 0 {
		f.nextSlot = (f.nextSlot + 1) % cfg.Laser.MuzzleSlots
	}
}
