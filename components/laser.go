package components

import (
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LaserReplicaData wraps one replicated laser.
type LaserReplicaData struct {
	ID    uint32
	Laser *laser.Laser
	Alpha float64
	Fade  *gween.Tween // Started when the beam enters its last ticks
}

var LaserReplica = donburi.NewComponentType[LaserReplicaData]()
