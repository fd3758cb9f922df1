package systems

import (
	"math"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RadarPoint maps world (x, y) onto a radar of radius pixels centered on
// (cx, cy) in the world. The radar turns with the camera so up is the view
// direction. inside is false beyond rng.
func RadarPoint(cx, cy, yaw, x, y, rng, radius float64) (px, py float64, inside bool) {
	dx, dy := x-cx, y-cy
	if math.Hypot(dx, dy) > rng {
		return 0, 0, false
	}
	s, c := math.Sincos(yaw)
	right := dx*c - dy*s
	forward := dx*s + dy*c
	scale := radius / rng
	return right * scale, -forward * scale, true
}

// RadarRange returns the configured radar range for a settings index.
func RadarRange(index int) float64 {
	ranges := cfg.Settings.RadarRanges
	if index < 0 || index >= len(ranges) {
		return cfg.Radar.Range
	}
	return ranges[index]
}

// DrawRadar renders turrets, live beams and recent hits in the corner.
func DrawRadar(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(camEntry)

	rng := cfg.Radar.Range
	if entry, ok := components.Settings.First(e.World); ok {
		rng = RadarRange(components.Settings.Get(entry).RadarRangeIndex)
	}

	radius := cfg.Radar.Radius
	ox := float64(screen.Bounds().Dx()) - radius - cfg.UI.HUDMargin
	oy := float64(screen.Bounds().Dy()) - radius - cfg.UI.HUDMargin
	cx, cy := camera.Target[0], camera.Target[1]

	vector.DrawFilledCircle(screen, float32(ox), float32(oy), float32(radius), cfg.Radar.BackgroundColor, true)
	for i := 1; i <= 3; i++ {
		vector.StrokeCircle(screen, float32(ox), float32(oy), float32(radius*float64(i)/3), 1, cfg.Radar.RingColor, true)
	}

	toScreen := func(x, y float64) (float32, float32, bool) {
		px, py, inside := RadarPoint(cx, cy, camera.Yaw, x, y, rng, radius)
		return float32(ox + px), float32(oy + py), inside
	}

	if cfg.Radar.ShowLasers {
		tags.Laser.Each(e.World, func(entry *donburi.Entry) {
			l := components.LaserReplica.Get(entry).Laser
			if l.Source == nil {
				return
			}
			src, ok := l.Source.Resolve()
			if !ok {
				return
			}
			start := src.Position()
			x0, y0, in0 := toScreen(start[0], start[1])
			x1, y1, in1 := toScreen(l.Position[0], l.Position[1])
			if in0 && in1 {
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Radar.LaserColor, true)
			}
		})
	}

	if cfg.Radar.ShowTurrets {
		size := float32(cfg.Radar.BlipSize)
		tags.Turret.Each(e.World, func(entry *donburi.Entry) {
			tv := components.TurretView.Get(entry)
			x, y, ok := toScreen(tv.Source.Sim.X, tv.Source.Sim.Y)
			if !ok {
				return
			}
			clr := cfg.Radar.TurretColor
			if tv.Destroyed {
				clr = cfg.Radar.DeadColor
			}
			vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, clr, false)
		})
	}

	if cfg.Radar.ShowHits {
		tags.Blip.Each(e.World, func(entry *donburi.Entry) {
			blip := components.RadarBlip.Get(entry)
			left := components.AutoDestroy.Get(entry).FramesRemaining
			x, y, ok := toScreen(blip.X, blip.Y)
			if !ok {
				return
			}
			clr := cfg.Radar.HitColor
			if blip.MaxTTL > 0 {
				clr.A = uint8(255 * float64(left) / float64(blip.MaxTTL))
			}
			vector.StrokeCircle(screen, x, y, float32(cfg.Radar.BlipSize)+1, 1, clr, true)
		})
	}
}
