package netcomponents

import (
	"math"
	"testing"
)

func TestLerpNetPosition(t *testing.T) {
	got := LerpNetPosition(NetPositionData{0, 0, 0}, NetPositionData{10, 20, -4}, 0.25)
	if got.X != 2.5 || got.Y != 5 || got.Z != -1 {
		t.Errorf("Expected (2.5,5,-1), got %+v", *got)
	}
}

func TestLerpNetTurretShortestArc(t *testing.T) {
	from := NetTurretData{Yaw: math.Pi - 0.1, Health: 5}
	to := NetTurretData{Yaw: -math.Pi + 0.1, Health: 3, Name: "east"}

	got := LerpNetTurret(from, to, 0.5)
	if math.Abs(math.Abs(got.Yaw)-math.Pi) > 1e-9 {
		t.Errorf("Expected yaw to cross pi, got %f", got.Yaw)
	}
	if got.Health != 3 || got.Name != "east" {
		t.Errorf("Expected discrete fields from target, got %+v", *got)
	}
}
