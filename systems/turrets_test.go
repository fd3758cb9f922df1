package systems

import (
	"math"
	"testing"

	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
)

func turretEntity(id esync.NetworkId, yaw float64, health int) NetEntity {
	return NetEntity{
		ID: id,
		Components: []any{
			netcomponents.NetPositionData{X: 100, Y: 120},
			netcomponents.NetTurretData{
				Name:         "north",
				Index:        0,
				Yaw:          yaw,
				MuzzleHeight: 16,
				Health:       health,
				MaxHealth:    10,
			},
		},
	}
}

func newArenaECS() *ecs.ECS {
	e := newTestECS()
	factory.CreateArena(e, &leveldata.Arena{Name: "test", MapWidth: 400, MapHeight: 400})
	factory.CreateCamera(e, 200, 200)
	return e
}

func TestApplySnapshotCreatesTurretsAndArenaState(t *testing.T) {
	e := newArenaECS()

	ApplySnapshot(e, []NetEntity{
		turretEntity(5, 0, 10),
		{ID: 9, Components: []any{netcomponents.NetArenaStateData{Arena: "test", State: netcomponents.ArenaStateRunning, Tick: 40}}},
	})

	if got := countTag(e.World, tags.Turret); got != 1 {
		t.Fatalf("Expected 1 turret, got %d", got)
	}
	entry, _ := components.Arena.First(e.World)
	state := components.Arena.Get(entry).State
	if state.State != netcomponents.ArenaStateRunning || state.Tick != 40 {
		t.Errorf("Expected running arena at tick 40, got %v at %d", state.State, state.Tick)
	}

	turret, ok := turretByNetworkID(e.World, 5)
	if !ok {
		t.Fatal("Expected turret findable by network id")
	}
	if components.TurretView.Get(turret).Source.Collider == 0 {
		t.Error("Expected turret collider registered in the arena world")
	}
}

func TestApplySnapshotInterpolatesAim(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 10)})
	ApplySnapshot(e, []NetEntity{turretEntity(5, 1, 10)})

	entry, _ := turretByNetworkID(e.World, 5)
	view := components.TurretView.Get(entry)
	if view.Source.Sim.Yaw != 1 {
		t.Errorf("Expected sim yaw to jump to 1, got %f", view.Source.Sim.Yaw)
	}

	InterpolateTurrets(e, 0.5)
	if math.Abs(view.Source.Render.Yaw-0.5) > 1e-9 {
		t.Errorf("Expected render yaw 0.5 halfway, got %f", view.Source.Render.Yaw)
	}

	InterpolateTurrets(e, 0.75)
	if math.Abs(view.Source.Render.Yaw-1) > 1e-9 {
		t.Errorf("Expected render yaw clamped at target 1, got %f", view.Source.Render.Yaw)
	}
}

func TestApplySnapshotFlashesOnDamage(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 10)})
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 7)})

	entry, _ := turretByNetworkID(e.World, 5)
	if components.Flash.Get(entry).Duration != hitFlashFrames {
		t.Errorf("Expected flash of %d frames, got %d", hitFlashFrames, components.Flash.Get(entry).Duration)
	}
	if netcomponents.NetTurret.Get(entry).Health != 7 {
		t.Errorf("Expected health 7, got %d", netcomponents.NetTurret.Get(entry).Health)
	}
}

func TestApplySnapshotMarksDestroyed(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 10)})

	dead := turretEntity(5, 0, 0)
	nt := dead.Components[1].(netcomponents.NetTurretData)
	nt.State = netconfig.TurretDestroyed
	dead.Components[1] = nt
	ApplySnapshot(e, []NetEntity{dead})

	entry, _ := turretByNetworkID(e.World, 5)
	if !components.TurretView.Get(entry).Destroyed {
		t.Error("Expected turret marked destroyed")
	}
}

func TestApplySnapshotRemovesMissingTurrets(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 10)})
	entry, _ := turretByNetworkID(e.World, 5)
	src := components.TurretView.Get(entry).Source

	ApplySnapshot(e, nil)

	if got := countTag(e.World, tags.Turret); got != 0 {
		t.Errorf("Expected turret removed, got %d", got)
	}
	if _, ok := TurretResolver(e.World)(1).Resolve(); ok {
		t.Error("Expected removed turret to stop resolving")
	}
	if src.World.Len() != 1 {
		t.Errorf("Expected only the ground plane left in the collision world, got %d objects", src.World.Len())
	}
}
