package leveldata

import (
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// broadphaseCell is the resolv cell size used for arena walls.
const broadphaseCell = 32

// BuildWorld creates the static collision world for an arena: the ground
// plane at z=0 plus one box per wall tile.
func (a *Arena) BuildWorld() *collision.World {
	w := collision.NewWorld(0, 0, float64(a.MapWidth), float64(a.MapHeight), broadphaseCell)

	w.AddPlane(collision.Plane{Normal: gamemath.Vec3(0, 0, 1), Distance: 0}, netconfig.StaticCollisionMask)
	for _, wall := range a.Walls {
		box := gamemath.Box{
			Min: gamemath.Vec3(wall.X, wall.Y, 0),
			Max: gamemath.Vec3(wall.X+wall.W, wall.Y+wall.H, wall.Height),
		}
		w.AddBox(box, netconfig.StaticCollisionMask)
	}
	return w
}
