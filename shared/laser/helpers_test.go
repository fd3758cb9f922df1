package laser_test

import (
	"math"

	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
)

// turretStub is a Source with a fixed muzzle.
type turretStub struct {
	origin vector.Vector
	muzzle gamemath.Transform
	render gamemath.Transform
	box    gamemath.Box

	world *collision.World
	id    collision.ObjectID
}

func newTurretStub(origin, muzzle vector.Vector, yaw float64) *turretStub {
	t := gamemath.YawPitch(muzzle, yaw, 0)
	return &turretStub{
		origin: origin,
		muzzle: t,
		render: t,
		box:    gamemath.BoxAround(origin, gamemath.Vec3(0.5, 0.5, 0.5)),
	}
}

func (s *turretStub) MuzzleTransform(int) gamemath.Transform       { return s.muzzle }
func (s *turretStub) RenderMuzzleTransform(int) gamemath.Transform { return s.render }
func (s *turretStub) MuzzleVector(int) vector.Vector               { return s.muzzle.Forward }
func (s *turretStub) Position() vector.Vector                      { return s.origin }
func (s *turretStub) WorldBox() gamemath.Box                       { return s.box }
func (s *turretStub) RenderWorldBox() gamemath.Box                 { return s.box }

func (s *turretStub) EnableCollision() {
	if s.world != nil {
		s.world.SetEnabled(s.id, true)
	}
}

func (s *turretStub) DisableCollision() {
	if s.world != nil {
		s.world.SetEnabled(s.id, false)
	}
}

type stubRef struct {
	src   laser.Source
	alive bool
}

func (r *stubRef) Resolve() (laser.Source, bool) {
	if !r.alive {
		return nil, false
	}
	return r.src, true
}

// wallAt builds a world with a single plane facing -Y at y = dist.
func wallAt(dist float64) *collision.World {
	w := collision.NewWorld(-100, -100, 400, 400, 16)
	w.AddPlane(collision.Plane{Normal: gamemath.Vec3(0, -1, 0), Distance: -dist}, netconfig.StaticCollisionMask)
	return w
}

type noHits struct{}

func (noHits) CastRay(vector.Vector, vector.Vector, netconfig.CollisionMask) (collision.RayInfo, bool) {
	return collision.RayInfo{}, false
}

func near(a, b vector.Vector, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func testData() *laser.Data {
	d := laser.DefaultData("test")
	d.BeamStartRadius = 2
	d.BeamEndRadius = 1
	d.TextureName = "beam.png"
	return d
}
