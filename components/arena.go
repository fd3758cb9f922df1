package components

import (
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// ArenaData is the client's copy of the arena the server runs (singleton).
type ArenaData struct {
	Arena *leveldata.Arena
	World *collision.World
	State netcomponents.NetArenaStateData
}

var Arena = donburi.NewComponentType[ArenaData]()
