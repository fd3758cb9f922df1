package systems

import (
	"log"

	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/automoto/laserbeam-mp/shared/turret"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetEntity is one decoded snapshot entity.
type NetEntity struct {
	ID         esync.NetworkId
	Components []any
}

// DecodeSnapshot deserializes every component of a snapshot. Components the
// mapper does not know are skipped.
func DecodeSnapshot(snapshot esync.WorldSnapshot) []NetEntity {
	out := make([]NetEntity, 0, len(snapshot))
	for _, ent := range snapshot {
		decoded := NetEntity{ID: ent.Id}
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				log.Printf("[snapshot] entity %d: %v", ent.Id, err)
				continue
			}
			decoded.Components = append(decoded.Components, instance)
		}
		out = append(out, decoded)
	}
	return out
}

// ApplySnapshot mirrors the server's turrets and arena state into the world.
// Turrets missing from the snapshot are removed with their colliders.
func ApplySnapshot(e *ecs.ECS, entities []NetEntity) {
	world := e.World
	present := make(map[esync.NetworkId]bool, len(entities))

	var arena *components.ArenaData
	if entry, ok := components.Arena.First(world); ok {
		arena = components.Arena.Get(entry)
	}

	for _, ent := range entities {
		var (
			pos      *netcomponents.NetPositionData
			nt       *netcomponents.NetTurretData
			stateSet bool
		)
		for _, data := range ent.Components {
			switch v := data.(type) {
			case netcomponents.NetPositionData:
				pos = &v
			case netcomponents.NetTurretData:
				nt = &v
			case netcomponents.NetArenaStateData:
				if arena != nil {
					arena.State = v
				}
				stateSet = true
			}
		}
		if nt == nil || pos == nil {
			if !stateSet {
				log.Printf("[snapshot] entity %d has no turret or arena state", ent.ID)
			}
			continue
		}
		present[ent.ID] = true

		entity := esync.FindByNetworkId(world, ent.ID)
		if !world.Valid(entity) {
			var cw *collision.World
			if arena != nil {
				cw = arena.World
			}
			entry := factory.CreateTurret(e, cw, *pos, *nt)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.ID)
			continue
		}

		applyTurretState(e, world.Entry(entity), *pos, *nt)
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || present[*id] || !entry.HasComponent(components.TurretView) {
			return
		}
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		factory.RemoveTurret(entry)
	}
}

func applyTurretState(e *ecs.ECS, entry *donburi.Entry, pos netcomponents.NetPositionData, nt netcomponents.NetTurretData) {
	prev := *netcomponents.NetTurret.Get(entry)
	netcomponents.NetPosition.SetValue(entry, pos)
	netcomponents.NetTurret.SetValue(entry, nt)

	view := components.TurretView.Get(entry)
	view.Destroyed = nt.State == netconfig.TurretDestroyed
	view.Source.Sim = poseOf(pos, nt)

	if nt.Health < prev.Health && !view.Destroyed {
		TriggerFlash(entry, hitFlashFrames)
	}

	interp := components.NetInterp.Get(entry)
	if !interp.Initialized {
		interp.PrevYaw, interp.PrevPitch = nt.Yaw, nt.Pitch
		interp.TargetYaw, interp.TargetPitch = nt.Yaw, nt.Pitch
		interp.T = 1
		interp.Initialized = true
		return
	}
	// Start from where the turret is drawn now, not the last target.
	interp.PrevYaw, interp.PrevPitch = view.Source.Render.Yaw, view.Source.Render.Pitch
	interp.TargetYaw, interp.TargetPitch = nt.Yaw, nt.Pitch
	interp.T = 0
}

func poseOf(pos netcomponents.NetPositionData, nt netcomponents.NetTurretData) turret.Pose {
	return turret.Pose{
		X:            pos.X,
		Y:            pos.Y,
		MuzzleHeight: nt.MuzzleHeight,
		Yaw:          nt.Yaw,
		Pitch:        nt.Pitch,
	}
}

// NewTurretInterpSystem returns a system that eases each turret's render pose
// toward its last snapshot. serverRate reports the snapshot rate.
func NewTurretInterpSystem(serverRate func() int, tps int) func(*ecs.ECS) {
	if tps <= 0 {
		tps = 60
	}
	return func(e *ecs.ECS) {
		rate := serverRate()
		if rate <= 0 {
			rate = netconfig.TickRate
		}
		step := float64(rate) / float64(tps)
		InterpolateTurrets(e, step)
	}
}

// InterpolateTurrets advances every turret's render pose by step of a
// snapshot interval.
func InterpolateTurrets(e *ecs.ECS, step float64) {
	components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		view := components.TurretView.Get(entry)
		pos := netcomponents.NetPosition.Get(entry)

		interp.T += step
		if interp.T > 1 {
			interp.T = 1
		}
		aim := netcomponents.LerpNetTurret(
			netcomponents.NetTurretData{Yaw: interp.PrevYaw, Pitch: interp.PrevPitch},
			netcomponents.NetTurretData{Yaw: interp.TargetYaw, Pitch: interp.TargetPitch},
			interp.T,
		)

		render := view.Source.Sim
		render.X, render.Y = pos.X, pos.Y
		render.Yaw, render.Pitch = aim.Yaw, aim.Pitch
		view.Source.Render = render
	})
}
