package archetypes

import (
	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers. Renderers on LayerWorld draw before LayerHUD.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Turret = newArchetype(
		tags.Turret,
		netcomponents.NetPosition,
		netcomponents.NetTurret,
		components.TurretView,
		components.NetInterp,
		components.Flash,
	)
	Laser = newArchetype(
		tags.Laser,
		components.LaserReplica,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.AutoDestroy,
	)
	Blip = newArchetype(
		tags.Blip,
		components.RadarBlip,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
