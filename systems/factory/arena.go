package factory

import (
	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena singleton with its collision world.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.Set(entry, &components.ArenaData{
		Arena: arena,
		World: arena.BuildWorld(),
	})
	return entry
}
