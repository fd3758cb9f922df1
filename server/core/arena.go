package core

import (
	"fmt"
	"log"
	"os"
	"path"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
)

// ServerArena holds the server's collision world and datablocks for an arena.
type ServerArena struct {
	Arena      *leveldata.Arena
	World      *collision.World
	Datablocks map[string]*laser.Data
}

// NewServerArena builds the collision world and checks every turret is valid
// and refers to a known datablock.
func NewServerArena(arena *leveldata.Arena, blocks map[string]*laser.Data) (*ServerArena, error) {
	for _, m := range arena.Turrets {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("turret %q: %w", m.Name, err)
		}
		if _, ok := blocks[m.Datablock]; !ok {
			return nil, fmt.Errorf("turret %q: unknown datablock %q", m.Name, m.Datablock)
		}
	}

	sa := &ServerArena{
		Arena:      arena,
		World:      arena.BuildWorld(),
		Datablocks: blocks,
	}

	log.Printf("[server] loaded arena %q: %d walls, %d turrets, %d datablocks, %dx%d map",
		arena.Name, len(arena.Walls), len(arena.Turrets), len(blocks), arena.MapWidth, arena.MapHeight)

	return sa, nil
}

// LoadServerArena loads levels/<name>.tmx and every datablock from the assets
// directory.
func LoadServerArena(assetsDir, name string) (*ServerArena, error) {
	fsys := os.DirFS(assetsDir)

	arena, err := leveldata.LoadArena(fsys, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}

	blocks, err := laser.LoadDatablocks(fsys, cfg.Laser.DatablockDir)
	if err != nil {
		return nil, fmt.Errorf("load datablocks: %w", err)
	}

	return NewServerArena(arena, blocks)
}
