package netcomponents

import "github.com/yohamta/donburi"

type ArenaState int

const (
	ArenaStateWaiting ArenaState = iota
	ArenaStateRunning
	ArenaStateCleared
)

func (s ArenaState) String() string {
	switch s {
	case ArenaStateWaiting:
		return "waiting"
	case ArenaStateRunning:
		return "running"
	case ArenaStateCleared:
		return "cleared"
	}
	return "unknown"
}

type NetArenaStateData struct {
	Arena        string
	Tick         uint32
	LiveLasers   int
	TurretsAlive int
	State        ArenaState
}

var NetArenaState = donburi.NewComponentType[NetArenaStateData]()
