package turret

import (
	"math"
	"testing"

	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

var testBody = Body{HalfWidth: 6, BarrelLength: 10, BarrelSpread: 3, Slots: 2}

func TestSlotOffset(t *testing.T) {
	tests := []struct {
		name string
		body Body
		slot int
		want float64
	}{
		{"left barrel", testBody, 0, -3},
		{"right barrel", testBody, 1, 3},
		{"out of range clamps", testBody, 5, 3},
		{"single barrel", Body{BarrelSpread: 3, Slots: 1}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.body.SlotOffset(tt.slot); got != tt.want {
				t.Errorf("Expected offset %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMuzzleFacesYaw(t *testing.T) {
	pose := Pose{X: 100, Y: 50, MuzzleHeight: 16, Yaw: math.Pi / 2}
	m := testBody.Muzzle(pose, 1)

	want := gamemath.Vec3(110, 47, 16)
	for i := range want {
		if math.Abs(m.Origin[i]-want[i]) > 1e-9 {
			t.Fatalf("Expected muzzle at %v, got %v", want, m.Origin)
		}
	}
	if math.Abs(m.Forward[0]-1) > 1e-9 {
		t.Errorf("Expected forward +X, got %v", m.Forward)
	}
}

func TestSourceTogglesCollider(t *testing.T) {
	world := collision.NewWorld(0, 0, 256, 256, 16)
	pose := Pose{X: 40, Y: 40, MuzzleHeight: 16}
	id := world.AddBox(testBody.Box(pose), netconfig.DynamicCollisionMask)

	src := &Source{Body: testBody, Sim: pose, Render: pose, World: world, Collider: id}
	src.DisableCollision()
	if world.Enabled(id) {
		t.Error("Expected collider disabled")
	}
	src.EnableCollision()
	if !world.Enabled(id) {
		t.Error("Expected collider enabled")
	}

	box := src.WorldBox()
	if box.Min[2] != 0 || box.Max[2] != 16 {
		t.Errorf("Expected box from ground to muzzle height, got %v..%v", box.Min, box.Max)
	}
	if gamemath.ExactlyEqual(src.MuzzleTransform(0).Origin, src.Position()) {
		t.Error("Expected muzzle away from the ground origin")
	}
}
