package factory

import (
	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLaser spawns the entity drawing a replica laser.
func CreateLaser(ecs *ecs.ECS, id uint32, l *laser.Laser) *donburi.Entry {
	entry := archetypes.Laser.Spawn(ecs)
	components.LaserReplica.Set(entry, &components.LaserReplicaData{
		ID:    id,
		Laser: l,
		Alpha: 1,
	})
	return entry
}
