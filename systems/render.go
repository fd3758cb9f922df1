package systems

import (
	"image/color"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/fonts"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	kvector "github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gridStep is the floor grid spacing in world units.
const gridStep = 32.0

// view is one frame's camera and viewport.
type view struct {
	cam  gamemath.CameraPose
	w, h float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cam, ok := CameraPose(e)
	if !ok {
		return view{}, false
	}
	return view{
		cam: cam,
		w:   float64(screen.Bounds().Dx()),
		h:   float64(screen.Bounds().Dy()),
	}, true
}

func (v view) project(p kvector.Vector) (float32, float32, bool) {
	x, y, _, ok := v.cam.Project(p, v.w, v.h)
	return float32(x), float32(y), ok
}

func (v view) line(screen *ebiten.Image, a, b kvector.Vector, width float32, clr color.Color) {
	x0, y0, ok0 := v.project(a)
	x1, y1, ok1 := v.project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// box draws the twelve edges of an axis aligned box.
func (v view) box(screen *ebiten.Image, b gamemath.Box, clr color.Color) {
	lo, hi := b.Min, b.Max
	corners := [8]kvector.Vector{
		gamemath.Vec3(lo[0], lo[1], lo[2]), gamemath.Vec3(hi[0], lo[1], lo[2]),
		gamemath.Vec3(hi[0], hi[1], lo[2]), gamemath.Vec3(lo[0], hi[1], lo[2]),
		gamemath.Vec3(lo[0], lo[1], hi[2]), gamemath.Vec3(hi[0], lo[1], hi[2]),
		gamemath.Vec3(hi[0], hi[1], hi[2]), gamemath.Vec3(lo[0], hi[1], hi[2]),
	}
	for i := 0; i < 4; i++ {
		v.line(screen, corners[i], corners[(i+1)%4], 1, clr)
		v.line(screen, corners[i+4], corners[(i+1)%4+4], 1, clr)
		v.line(screen, corners[i], corners[i+4], 1, clr)
	}
}

// DrawArena renders the floor grid and the walls.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	v, ok := newView(e, screen)
	if !ok {
		return
	}
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry).Arena
	if arena == nil {
		return
	}

	w, h := float64(arena.MapWidth), float64(arena.MapHeight)
	for x := 0.0; x <= w; x += gridStep {
		v.line(screen, gamemath.Vec3(x, 0, 0), gamemath.Vec3(x, h, 0), 1, cfg.Render.GridColor)
	}
	for y := 0.0; y <= h; y += gridStep {
		v.line(screen, gamemath.Vec3(0, y, 0), gamemath.Vec3(w, y, 0), 1, cfg.Render.GridColor)
	}

	for _, wall := range arena.Walls {
		v.box(screen, gamemath.Box{
			Min: gamemath.Vec3(wall.X, wall.Y, 0),
			Max: gamemath.Vec3(wall.X+wall.W, wall.Y+wall.H, wall.Height),
		}, cfg.Render.WallColor)
	}
}

// DrawTurrets renders each turret's body, barrels, name and health.
func DrawTurrets(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	smallFont := fonts.Small.Get()

	tags.Turret.Each(e.World, func(entry *donburi.Entry) {
		tv := components.TurretView.Get(entry)
		nt := netcomponents.NetTurret.Get(entry)
		src := tv.Source

		clr := cfg.Render.TurretColor
		if tv.Destroyed {
			clr = cfg.Render.DeadColor
		} else if components.Flash.Get(entry).Duration > 0 {
			clr = cfg.White
		}

		v.box(screen, src.RenderWorldBox(), clr)
		if !tv.Destroyed {
			pivot := src.Render.Pivot()
			for slot := 0; slot < src.Body.Slots; slot++ {
				tip := src.RenderMuzzleTransform(slot).Origin
				v.line(screen, pivot, tip, 2, clr)
			}
		}

		top := src.Render.Pivot()
		top[2] += 10
		x, y, ok := v.project(top)
		if !ok {
			return
		}
		label := nt.Name
		labelX := int(x) - len(label)*3
		text.Draw(screen, label, smallFont, labelX, int(y)-6, cfg.UI.TextColor)

		if nt.MaxHealth > 0 && !tv.Destroyed {
			const barW, barH = 28, 3
			ratio := float32(nt.Health) / float32(nt.MaxHealth)
			vector.DrawFilledRect(screen, x-barW/2, y, barW, barH, cfg.Red, false)
			vector.DrawFilledRect(screen, x-barW/2, y, barW*ratio, barH, cfg.Green, false)
		}
	})
}

// DrawParticles renders sparks as small squares that fade with age.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		left := components.AutoDestroy.Get(entry).FramesRemaining

		x, y, ok := v.project(p.Pos)
		if !ok {
			return
		}
		clr := p.Color
		if p.MaxTTL > 0 {
			clr.A = uint8(float64(clr.A) * float64(left) / float64(p.MaxTTL))
		}
		s := float32(p.Size)
		vector.DrawFilledRect(screen, x-s/2, y-s/2, s, s, clr, false)
	})
}
