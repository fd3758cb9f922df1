package factory

import (
	"testing"

	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDurationFrames(t *testing.T) {
	tests := []struct {
		ms, tps, want int
	}{
		{128, 60, 7},
		{1000, 60, 60},
		{1, 60, 1},
		{0, 60, 1},
	}
	for _, tt := range tests {
		if got := DurationFrames(tt.ms, tt.tps); got != tt.want {
			t.Errorf("DurationFrames(%d, %d): expected %d, got %d", tt.ms, tt.tps, tt.want, got)
		}
	}
}

func TestSpawnBeamParticlesIsBounded(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	n := SpawnBeamParticles(e, gamemath.Vec3(0, 0, 10), gamemath.Vec3(0, 5000, 10), gamemath.Vec3(1, 1, 1), 8)
	if n != maxParticlesPerEmit {
		t.Errorf("Expected %d particles on a long beam, got %d", maxParticlesPerEmit, n)
	}

	count := 0
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		count++
		if components.AutoDestroy.Get(entry).FramesRemaining != 8 {
			t.Errorf("Expected 8 frames to live, got %d", components.AutoDestroy.Get(entry).FramesRemaining)
		}
	})
	if count != n {
		t.Errorf("Expected %d particle entities, got %d", n, count)
	}
}
