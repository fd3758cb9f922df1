// Package leveldata parses TMX arenas shared between client and server and
// turns them into collision worlds. It has no dependencies on ebitengine or
// donburi.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// ErrInvalidMount is returned for a turret whose properties cannot fire a
// laser.
var ErrInvalidMount = errors.New("invalid turret mount")

// Arena holds everything the simulation needs from a TMX file.
type Arena struct {
	Name       string
	Walls      []Wall
	Turrets    []TurretMount
	MapWidth   int
	MapHeight  int
	WallHeight float64
}

// Wall is a solid tile extruded upward from the ground.
type Wall struct {
	X, Y, W, H float64
	Height     float64
}

// TurretMount is a turret placement from the Turrets object group. Angles are
// radians, rates radians per second.
type TurretMount struct {
	Name         string
	X, Y         float64
	MuzzleHeight float64
	Yaw          float64
	YawRate      float64
	FireInterval int
	Range        float64
	Lifetime     int
	Health       int
	Datablock    string
}

// Validate rejects mounts whose lasers could never be replicated.
func (m TurretMount) Validate() error {
	if m.Lifetime <= 0 || m.Lifetime > netconfig.MaxLivingTicks {
		return fmt.Errorf("%w: lifetime %d outside 1..%d", ErrInvalidMount, m.Lifetime, netconfig.MaxLivingTicks)
	}
	return nil
}
