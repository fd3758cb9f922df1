package systems

import (
	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// particleGravity pulls sparks down, world units per frame squared.
const particleGravity = 0.02

// ecsEffects is the laser.Effects the client beam simulation drives.
type ecsEffects struct {
	ecs *ecs.ECS
	tps int
}

var _ laser.Effects = (*ecsEffects)(nil)

func (fx *ecsEffects) EmitParticles(start, end, scale vector.Vector, durationMs int) {
	factory.SpawnBeamParticles(fx.ecs, start, end, scale, factory.DurationFrames(durationMs, fx.tps))
}

func (fx *ecsEffects) UpdateSound(l *laser.Laser) {
	ReportBeamHum(fx.ecs, l.Position)
}

// UpdateEffects moves particles, counts down flashes and removes expired
// entities.
func UpdateEffects(ecs *ecs.ECS) {
	updateParticles(ecs)
	updateFlashEffects(ecs)
	updateAutoDestroy(ecs)
}

func updateParticles(ecs *ecs.ECS) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel[2] -= particleGravity
		if p.Pos[2] < 0 {
			p.Pos[2] = 0
			p.Vel[2] = 0
		}
	})
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerFlash starts a hit flash on an entity.
func TriggerFlash(entry *donburi.Entry, frames int) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.Get(entry).Duration = frames
}
