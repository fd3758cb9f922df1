package systems

import (
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hitFlashFrames       = 6
	destroyShakeStrength = 6.0
	destroyShakeFrames   = 20
)

// EventFeed is the part of network.Client the event system consumes.
type EventFeed interface {
	DrainHitEvents() []messages.LaserHitEvent
	DrainTurretDestroyedEvents() []messages.TurretDestroyedEvent
}

// NewEventSystem turns server hit and destruction events into sparks, radar
// blips, flashes and sounds.
func NewEventSystem(feed EventFeed) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		for _, hit := range feed.DrainHitEvents() {
			HandleHit(e, hit)
		}
		for _, evt := range feed.DrainTurretDestroyedEvents() {
			HandleTurretDestroyed(e, evt)
		}
	}
}

// HandleHit plays back one damage pulse.
func HandleHit(e *ecs.ECS, hit messages.LaserHitEvent) {
	point := gamemath.Vec3(hit.X, hit.Y, hit.Z)
	normal := gamemath.Vec3(hit.NX, hit.NY, hit.NZ)

	factory.SpawnHitBurst(e, point, normal)
	factory.SpawnRadarBlip(e, hit.X, hit.Y)
	PlaySFX(e, cfg.SoundBeamHit)

	if entry, ok := turretByNetworkID(e.World, hit.TargetNetworkID); ok {
		TriggerFlash(entry, hitFlashFrames)
	}
}

// HandleTurretDestroyed marks the turret dead ahead of the next snapshot.
func HandleTurretDestroyed(e *ecs.ECS, evt messages.TurretDestroyedEvent) {
	PlaySFX(e, cfg.SoundTurretDestroyed)
	TriggerScreenShake(e, destroyShakeStrength, destroyShakeFrames)

	entry, ok := turretByNetworkID(e.World, evt.NetworkID)
	if !ok {
		return
	}
	view := components.TurretView.Get(entry)
	view.Destroyed = true
	box := view.Source.WorldBox()
	factory.SpawnHitBurst(e, box.Center(), gamemath.Vec3(0, 0, 1))
}

func turretByNetworkID(world donburi.World, id uint) (*donburi.Entry, bool) {
	if id == 0 {
		return nil, false
	}
	entity := esync.FindByNetworkId(world, esync.NetworkId(id))
	if !world.Valid(entity) {
		return nil, false
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(components.TurretView) {
		return nil, false
	}
	return entry, true
}
