package systems

import (
	"testing"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/tags"
)

func TestEventSystemPlaysBackHits(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 10)})
	feed := &fakeFeed{hits: []messages.LaserHitEvent{{
		LaserID:         1,
		TargetNetworkID: 5,
		X:               100, Y: 120, Z: 8,
		NX: 0, NY: -1, NZ: 0,
		Damage: 1,
	}}}

	NewEventSystem(feed)(e)

	if got := countTag(e.World, tags.Blip); got != 1 {
		t.Errorf("Expected 1 radar blip, got %d", got)
	}
	if got := countTag(e.World, tags.Particle); got == 0 {
		t.Error("Expected hit sparks")
	}
	entry, _ := turretByNetworkID(e.World, 5)
	if components.Flash.Get(entry).Duration == 0 {
		t.Error("Expected hit turret to flash")
	}
	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundBeamHit {
		t.Errorf("Expected one beam hit sound queued, got %v", pending)
	}
}

func TestEventSystemWallHitHasNoTurret(t *testing.T) {
	e := newArenaECS()
	feed := &fakeFeed{hits: []messages.LaserHitEvent{{LaserID: 1, X: 10, Y: 10, NZ: 1}}}

	NewEventSystem(feed)(e)

	if got := countTag(e.World, tags.Blip); got != 1 {
		t.Errorf("Expected 1 radar blip, got %d", got)
	}
}

func TestEventSystemTurretDestroyed(t *testing.T) {
	e := newArenaECS()
	ApplySnapshot(e, []NetEntity{turretEntity(5, 0, 1)})
	feed := &fakeFeed{destroyed: []messages.TurretDestroyedEvent{{NetworkID: 5, KillerID: 7}}}

	NewEventSystem(feed)(e)

	entry, _ := turretByNetworkID(e.World, 5)
	if !components.TurretView.Get(entry).Destroyed {
		t.Error("Expected turret marked destroyed")
	}
	camera, _ := components.Camera.First(e.World)
	if !camera.HasComponent(components.ScreenShake) {
		t.Error("Expected screen shake on destruction")
	}
}
