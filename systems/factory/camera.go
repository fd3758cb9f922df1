package factory

import (
	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbit camera looking at the arena center.
func CreateCamera(ecs *ecs.ECS, centerX, centerY float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Target:   gamemath.Vec3(centerX, centerY, 0),
		Distance: cfg.Camera.Distance,
		Pitch:    cfg.Camera.Pitch,
	})
}
