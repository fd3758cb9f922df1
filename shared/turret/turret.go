// Package turret holds the geometry of an arena turret and its adapter to
// laser.Source. Server and client both use it so muzzles line up on both
// sides.
package turret

import (
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/kvartborg/vector"
)

// Body is the fixed shape shared by every turret.
type Body struct {
	HalfWidth    float64
	BarrelLength float64
	BarrelSpread float64
	Slots        int
}

// Pose is where a turret stands and aims.
type Pose struct {
	X, Y         float64
	MuzzleHeight float64
	Yaw, Pitch   float64
}

// Origin is the turret's ground position.
func (p Pose) Origin() vector.Vector {
	return gamemath.Vec3(p.X, p.Y, 0)
}

// Pivot is the point the barrels rotate around.
func (p Pose) Pivot() vector.Vector {
	return gamemath.Vec3(p.X, p.Y, p.MuzzleHeight)
}

// SlotOffset is the sideways barrel offset for slot. Barrels are spread
// evenly from -BarrelSpread to +BarrelSpread.
func (b Body) SlotOffset(slot int) float64 {
	if b.Slots <= 1 {
		return 0
	}
	if slot < 0 {
		slot = 0
	}
	if slot >= b.Slots {
		slot = b.Slots - 1
	}
	return b.BarrelSpread * (2*float64(slot)/float64(b.Slots-1) - 1)
}

// Muzzle returns the barrel transform for slot.
func (b Body) Muzzle(p Pose, slot int) gamemath.Transform {
	aim := gamemath.YawPitch(p.Pivot(), p.Yaw, p.Pitch)
	tip := p.Pivot().
		Add(aim.Forward.Scale(b.BarrelLength)).
		Add(aim.Right.Scale(b.SlotOffset(slot)))
	return aim.WithOrigin(tip)
}

// Box is the turret's collision volume.
func (b Body) Box(p Pose) gamemath.Box {
	half := p.MuzzleHeight / 2
	return gamemath.BoxAround(gamemath.Vec3(p.X, p.Y, half), gamemath.Vec3(b.HalfWidth, b.HalfWidth, half))
}

// Source adapts one turret to laser.Source. Sim is the simulated pose, Render
// the smoothed pose drawn this frame.
type Source struct {
	Body   Body
	Sim    Pose
	Render Pose

	World    *collision.World
	Collider collision.ObjectID
}

var _ laser.Source = (*Source)(nil)

func (s *Source) MuzzleTransform(slot int) gamemath.Transform {
	return s.Body.Muzzle(s.Sim, slot)
}

func (s *Source) RenderMuzzleTransform(slot int) gamemath.Transform {
	return s.Body.Muzzle(s.Render, slot)
}

func (s *Source) MuzzleVector(slot int) vector.Vector {
	return s.Body.Muzzle(s.Sim, slot).Forward
}

func (s *Source) Position() vector.Vector {
	return s.Sim.Origin()
}

func (s *Source) WorldBox() gamemath.Box {
	return s.Body.Box(s.Sim)
}

func (s *Source) RenderWorldBox() gamemath.Box {
	return s.Body.Box(s.Render)
}

func (s *Source) EnableCollision() {
	if s.World != nil {
		s.World.SetEnabled(s.Collider, true)
	}
}

func (s *Source) DisableCollision() {
	if s.World != nil {
		s.World.SetEnabled(s.Collider, false)
	}
}
