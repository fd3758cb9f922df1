package laser_test

import (
	"testing"

	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/laser/mocks"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
	"go.uber.org/mock/gomock"
)

func TestEndToEndAgainstWall(t *testing.T) {
	world := wallAt(30)
	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	src.world = world
	src.id = world.AddBox(src.box, netconfig.DynamicCollisionMask)

	data := testData()
	data.ArmingDelay = 2
	data.DamageInterval = 3

	l := laser.New(data, netconfig.SideServer, &stubRef{src: src, alive: true}, 7, 0, 50, 10)

	var hits []uint32
	removedAt := uint32(0)
	for i := 0; i < 15; i++ {
		res := l.ProcessTick(world, nil)
		if res.Collision != nil {
			hits = append(hits, res.Collision.Tick)
			if !near(res.Collision.Point, gamemath.Vec3(0, 30, 0), 1e-9) {
				t.Errorf("Expected hit point (0,30,0), got %v", res.Collision.Point)
			}
		}
		if res.Removed {
			if removedAt != 0 {
				t.Fatalf("Expected a single removal, got another at tick %d", l.Tick)
			}
			removedAt = l.Tick
		}
		if !world.Enabled(src.id) {
			t.Fatalf("Expected source collision re-enabled after tick %d", l.Tick)
		}

		switch l.Tick {
		case 1, 2:
			if !near(l.Position, gamemath.Vec3(0, 50, 0), 1e-9) {
				t.Errorf("Expected unarmed beam at full range on tick %d, got %v", l.Tick, l.Position)
			}
		case 3, 9:
			if !near(l.Position, gamemath.Vec3(0, 30, 0), 1e-9) {
				t.Errorf("Expected beam clamped to wall on tick %d, got %v", l.Tick, l.Position)
			}
		}
	}

	want := []uint32{3, 6, 9}
	if len(hits) != len(want) {
		t.Fatalf("Expected hits at %v, got %v", want, hits)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("Expected hit %d at tick %d, got %d", i, want[i], hits[i])
		}
	}
	if removedAt != 10 {
		t.Errorf("Expected removal at tick 10, got %d", removedAt)
	}
	if l.Tick != 10 {
		t.Errorf("Expected tick to stop at 10 after removal, got %d", l.Tick)
	}
}

type alwaysHit struct{}

func (alwaysHit) CastRay(_, _ vector.Vector, _ netconfig.CollisionMask) (collision.RayInfo, bool) {
	return collision.RayInfo{Point: gamemath.Vec3(0, 5, 0), Normal: gamemath.Vec3(0, -1, 0), Object: 1}, true
}

func TestDamagePulseSpacing(t *testing.T) {
	tests := []struct {
		name     string
		arming   uint32
		interval uint32
		want     []uint32
	}{
		{"arming 2 interval 3", 2, 3, []uint32{3, 6, 9, 12, 15, 18}},
		{"arming 0 interval 5", 0, 5, []uint32{1, 6, 11, 16}},
		{"arming 4 interval 1", 4, 1, []uint32{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"arming 15 interval 0", 15, 0, []uint32{16, 17, 18, 19, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testData()
			data.ArmingDelay = tt.arming
			data.DamageInterval = tt.interval
			src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
			l := laser.New(data, netconfig.SideServer, &stubRef{src: src, alive: true}, 1, 0, 50, 1000)

			var got []uint32
			for i := 0; i < 20; i++ {
				res := l.ProcessTick(alwaysHit{}, nil)
				if res.Collision != nil {
					got = append(got, res.Collision.Tick)
				}
				if l.DamageCycle > data.DamageInterval {
					t.Fatalf("Expected damage cycle within [0,%d], got %d", data.DamageInterval, l.DamageCycle)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected pulses %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected pulse %d at %d, got %d", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLifetimeTermination(t *testing.T) {
	for _, lifetime := range []uint32{1, 2, 7, 100} {
		src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
		l := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 1, 0, 10, lifetime)

		removals := 0
		frozen := l.Position
		for i := uint32(0); i < lifetime+5; i++ {
			res := l.ProcessTick(noHits{}, nil)
			if res.Removed {
				removals++
				if l.Tick != lifetime {
					t.Errorf("Expected removal at tick %d, got %d", lifetime, l.Tick)
				}
				frozen = l.Position
			}
			if removals > 0 && !gamemath.ExactlyEqual(l.Position, frozen) {
				t.Errorf("Expected no movement after removal, got %v", l.Position)
			}
		}
		if removals != 1 {
			t.Errorf("Expected exactly one removal for lifetime %d, got %d", lifetime, removals)
		}
		if !l.Removed() {
			t.Errorf("Expected laser marked removed for lifetime %d", lifetime)
		}
	}
}

func TestClientNeverRemoves(t *testing.T) {
	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	l := laser.New(testData(), netconfig.SideClient, &stubRef{src: src, alive: true}, 1, 0, 10, 3)

	for i := 0; i < 10; i++ {
		if res := l.ProcessTick(noHits{}, nil); res.Removed {
			t.Fatalf("Expected replica to keep ticking, removed at tick %d", l.Tick)
		}
	}
	if l.Tick != 10 {
		t.Errorf("Expected tick 10, got %d", l.Tick)
	}
}

func TestMuzzleFallbackUsesBoxCenter(t *testing.T) {
	origin := gamemath.Vec3(4, 4, 0)
	src := newTurretStub(origin, origin.Clone(), 0)
	src.box = gamemath.BoxAround(gamemath.Vec3(4, 4, 2), gamemath.Vec3(1, 1, 2))

	l := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 1, 0, 10, 50)
	if !gamemath.ExactlyEqual(l.Position, gamemath.Vec3(4, 4, 2)) {
		t.Errorf("Expected spawn at box center, got %v", l.Position)
	}

	l.ProcessTick(noHits{}, nil)
	if !near(l.Position, gamemath.Vec3(4, 14, 2), 1e-9) {
		t.Errorf("Expected end at center + range, got %v", l.Position)
	}
}

func TestMuzzleOffsetIsUsedAsIs(t *testing.T) {
	origin := gamemath.Vec3(4, 4, 0)
	src := newTurretStub(origin, gamemath.Vec3(4, 4, 1e-9), 0)

	l := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 1, 0, 10, 50)
	if !gamemath.ExactlyEqual(l.Position, gamemath.Vec3(4, 4, 1e-9)) {
		t.Errorf("Expected muzzle translation, got %v", l.Position)
	}
}

func TestMissingSourceFreezes(t *testing.T) {
	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	ref := &stubRef{src: src, alive: true}
	l := laser.New(testData(), netconfig.SideServer, ref, 1, 0, 10, 5)

	l.ProcessTick(noHits{}, nil)
	pos := l.Position.Clone()
	ref.alive = false

	for i := 0; i < 3; i++ {
		res := l.ProcessTick(alwaysHit{}, nil)
		if res.Collision != nil {
			t.Error("Expected no collision from a frozen beam")
		}
		if !gamemath.ExactlyEqual(l.Position, pos) {
			t.Errorf("Expected frozen position %v, got %v", pos, l.Position)
		}
	}
	if res := l.ProcessTick(noHits{}, nil); !res.Removed {
		t.Errorf("Expected lifetime removal to still happen at tick %d", l.Tick)
	}
}

func TestCollisionToggleOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	ref := mocks.NewMockSourceRef(ctrl)
	container := mocks.NewMockContainer(ctrl)

	muzzle := gamemath.YawPitch(gamemath.Zero3(), 0, 0)
	ref.EXPECT().Resolve().Return(src, true).AnyTimes()
	src.EXPECT().MuzzleTransform(0).Return(muzzle).AnyTimes()
	src.EXPECT().MuzzleVector(0).Return(muzzle.Forward).AnyTimes()
	src.EXPECT().Position().Return(gamemath.Vec3(0, -1, 0)).AnyTimes()
	src.EXPECT().WorldBox().Return(gamemath.Box{}).AnyTimes()

	hit := collision.RayInfo{Point: gamemath.Vec3(0, 3, 0), Normal: gamemath.Vec3(0, -1, 0), Object: 9}
	gomock.InOrder(
		src.EXPECT().DisableCollision(),
		container.EXPECT().CastRay(gamemath.Zero3(), gamemath.Vec3(0, 10, 0), netconfig.ProjectileCollisionMask).Return(hit, true),
		src.EXPECT().EnableCollision().Times(2),
	)

	l := laser.New(testData(), netconfig.SideServer, ref, 1, 0, 10, 50)
	res := l.ProcessTick(container, nil)
	if res.Collision == nil || res.Collision.Object != 9 {
		t.Fatalf("Expected collision with object 9, got %+v", res.Collision)
	}
}

func TestClientEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)

	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	l := laser.New(testData(), netconfig.SideClient, &stubRef{src: src, alive: true}, 1, 0, 10, 50)

	gomock.InOrder(
		fx.EXPECT().EmitParticles(gamemath.Zero3(), gamemath.Vec3(0, 10, 0), gamemath.Vec3(1, 1, 1), netconfig.TickMs*4),
		fx.EXPECT().UpdateSound(l),
	)
	l.ProcessTick(noHits{}, fx)
}

func TestServerSkipsEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := mocks.NewMockEffects(ctrl)

	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	l := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 1, 0, 10, 50)
	l.ProcessTick(noHits{}, fx)
}
