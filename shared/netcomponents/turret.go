package netcomponents

import (
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

type NetTurretData struct {
	Name         string
	Index        int // Position in the arena's sorted turret list
	Yaw, Pitch   float64
	MuzzleHeight float64
	State        int // netconfig.TurretActive / TurretDestroyed
	Health       int
	MaxHealth    int
	Datablock    string
}

var NetTurret = donburi.NewComponentType[NetTurretData]()

// LerpNetTurret interpolates aim along the shortest arc
func LerpNetTurret(from, to NetTurretData, t float64) *NetTurretData {
	out := to
	out.Yaw = gamemath.WrapAngle(from.Yaw + gamemath.WrapAngle(to.Yaw-from.Yaw)*t)
	out.Pitch = from.Pitch + (to.Pitch-from.Pitch)*t
	return &out
}
