package factory

import (
	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/automoto/laserbeam-mp/shared/turret"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TurretBody is the client copy of the server's turret shape.
func TurretBody() turret.Body {
	return turret.Body{
		HalfWidth:    cfg.Turret.HalfWidth,
		BarrelLength: cfg.Turret.BarrelLength,
		BarrelSpread: cfg.Turret.BarrelSpread,
		Slots:        cfg.Laser.MuzzleSlots,
	}
}

// CreateTurret spawns a replicated turret and registers its collider so
// replica beams stop on it like the server's do.
func CreateTurret(ecs *ecs.ECS, world *collision.World, pos netcomponents.NetPositionData, nt netcomponents.NetTurretData) *donburi.Entry {
	entry := archetypes.Turret.Spawn(ecs)

	pose := turret.Pose{
		X:            pos.X,
		Y:            pos.Y,
		MuzzleHeight: nt.MuzzleHeight,
		Yaw:          nt.Yaw,
		Pitch:        nt.Pitch,
	}
	src := &turret.Source{
		Body:   TurretBody(),
		Sim:    pose,
		Render: pose,
		World:  world,
	}
	if world != nil {
		src.Collider = world.AddBox(src.Body.Box(pose), netconfig.DynamicCollisionMask)
	}

	netcomponents.NetPosition.SetValue(entry, pos)
	netcomponents.NetTurret.SetValue(entry, nt)
	components.TurretView.Set(entry, &components.TurretViewData{
		Source:    src,
		Index:     nt.Index,
		Destroyed: nt.State == netconfig.TurretDestroyed,
	})
	components.NetInterp.Set(entry, &components.NetInterpData{
		PrevYaw:     nt.Yaw,
		TargetYaw:   nt.Yaw,
		PrevPitch:   nt.Pitch,
		TargetPitch: nt.Pitch,
		T:           1,
		Initialized: true,
	})
	return entry
}

// RemoveTurret drops a turret entity and its collider.
func RemoveTurret(entry *donburi.Entry) {
	view := components.TurretView.Get(entry)
	if view.Source != nil && view.Source.World != nil {
		view.Source.World.Remove(view.Source.Collider)
	}
	entry.Remove()
}
