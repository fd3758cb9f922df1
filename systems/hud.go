package systems

import (
	"fmt"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/fonts"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 16

// HUDStatus is the connection info the HUD shows.
type HUDStatus struct {
	ServerName string
	Connection string
	DecodeErrs int
	Replicas   int
}

// NewHUDRenderer draws the arena status panel. status is polled every frame.
func NewHUDRenderer(status func() HUDStatus) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		drawStatusPanel(e, screen, status())
		drawSelectedTurret(e, screen)
	}
}

func drawStatusPanel(e *ecs.ECS, screen *ebiten.Image, st HUDStatus) {
	var arena netcomponents.NetArenaStateData
	if entry, ok := components.Arena.First(e.World); ok {
		arena = components.Arena.Get(entry).State
	}

	lines := []string{
		fmt.Sprintf("%s  [%s]", st.ServerName, st.Connection),
		fmt.Sprintf("Arena: %s (%s)  Tick: %d", arena.Arena, arena.State, arena.Tick),
		fmt.Sprintf("Turrets: %d  Lasers: %d  Replicas: %d", arena.TurretsAlive, arena.LiveLasers, st.Replicas),
		fmt.Sprintf("Decode errors: %d", st.DecodeErrs),
	}

	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin)
	face := fonts.Small.Get()
	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), 300, float32(len(lines)*hudLineHeight+6), cfg.BlackOverlay, false)
	for i, line := range lines {
		clr := cfg.UI.TextColor
		if i == 1 && arena.State == netcomponents.ArenaStateCleared {
			clr = cfg.UI.WarningColor
		}
		text.Draw(screen, line, face, x, y+hudLineHeight*(i+1)-4, clr)
	}
}

func drawSelectedTurret(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	selected := components.Settings.Get(entry).SelectedTurret

	label := fmt.Sprintf("Turret %d: none", selected+1)
	tags.Turret.Each(e.World, func(t *donburi.Entry) {
		nt := netcomponents.NetTurret.Get(t)
		if nt.Index != selected {
			return
		}
		label = fmt.Sprintf("Turret %d: %s  %s  HP %d/%d", selected+1, nt.Name, nt.Datablock, nt.Health, nt.MaxHealth)
	})

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - int(cfg.UI.HUDMargin)
	text.Draw(screen, label, face, int(cfg.UI.HUDMargin), y-hudLineHeight, cfg.UI.TextColor)
	text.Draw(screen, "1-9 select  Space fire  Tab debug  Esc leave", face, int(cfg.UI.HUDMargin), y, cfg.Grey)
}
