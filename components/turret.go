package components

import (
	"github.com/automoto/laserbeam-mp/shared/turret"
	"github.com/yohamta/donburi"
)

// TurretViewData holds the client geometry of a replicated turret. Source is
// what replica lasers resolve to.
type TurretViewData struct {
	Source    *turret.Source
	Index     int
	Destroyed bool
}

var TurretView = donburi.NewComponentType[TurretViewData]()
