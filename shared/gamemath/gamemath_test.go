package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCrossUnitZeroStaysZero(t *testing.T) {
	v := Vec3(1, 2, 3)
	got := CrossUnit(v, v.Scale(2))
	if !ExactlyEqual(got, Zero3()) {
		t.Errorf("Expected zero vector for parallel inputs, got %v", got)
	}
	if !IsFinite(got) {
		t.Errorf("Expected finite components, got %v", got)
	}
}

func TestCrossUnitIsUnit(t *testing.T) {
	got := CrossUnit(Vec3(2, 0, 0), Vec3(0, 3, 0))
	if !near(got[0], 0) || !near(got[1], 0) || !near(got[2], 1) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}

func TestExactlyEqual(t *testing.T) {
	a := Vec3(1, 2, 3)
	if !ExactlyEqual(a, Vec3(1, 2, 3)) {
		t.Error("Expected identical vectors to compare equal")
	}
	if ExactlyEqual(a, Vec3(1, 2, 3+1e-12)) {
		t.Error("Expected tiny difference to compare unequal")
	}
}

func TestYawPitchForward(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       [3]float64
	}{
		{"north", 0, 0, [3]float64{0, 1, 0}},
		{"east", math.Pi / 2, 0, [3]float64{1, 0, 0}},
		{"up", 0, math.Pi / 2, [3]float64{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := YawPitch(Zero3(), tt.yaw, tt.pitch).Forward
			for i := 0; i < 3; i++ {
				if !near(f[i], tt.want[i]) {
					t.Errorf("Expected forward %v, got %v", tt.want, f)
					break
				}
			}
		})
	}
}

func TestMulPoint(t *testing.T) {
	tr := YawPitch(Vec3(10, 0, 0), math.Pi/2, 0)
	got := tr.MulPoint(Vec3(0, 5, 0))
	if !near(got[0], 15) || !near(got[1], 0) || !near(got[2], 0) {
		t.Errorf("Expected (15,0,0), got %v", got)
	}
}

func TestBoxCenter(t *testing.T) {
	b := BoxAround(Vec3(1, 2, 3), Vec3(1, 1, 1))
	if !ExactlyEqual(b.Center(), Vec3(1, 2, 3)) {
		t.Errorf("Expected center (1,2,3), got %v", b.Center())
	}
	if !b.Contains(Vec3(2, 3, 4)) || b.Contains(Vec3(2.1, 3, 4)) {
		t.Error("Expected Contains to include the faces only")
	}
}

func TestApproachAngle(t *testing.T) {
	got := ApproachAngle(0, 1, 0.25)
	if !near(got, 0.25) {
		t.Errorf("Expected 0.25, got %f", got)
	}
	got = ApproachAngle(3, -3, 0.5)
	if got < 3 && got > -3 {
		t.Errorf("Expected turn across pi, got %f", got)
	}
}

func TestProject(t *testing.T) {
	cam := CameraPose{Position: Zero3(), FovY: math.Pi / 2}

	sx, sy, depth, ok := cam.Project(Vec3(0, 10, 0), 200, 100)
	if !ok || !near(sx, 100) || !near(sy, 50) || !near(depth, 10) {
		t.Errorf("Expected center of screen, got (%f,%f) depth %f ok %v", sx, sy, depth, ok)
	}

	if _, _, _, ok := cam.Project(Vec3(0, -10, 0), 200, 100); ok {
		t.Error("Expected point behind camera to be rejected")
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"unit", []float64{0, 1, 0}, []float64{0, 1, 0}, 1},
		{"long", []float64{0, 30, 0}, []float64{0, 1, 0}, 30},
		{"negative", []float64{2, 3, 4}, []float64{-1, -2, -3}, -20},
		{"orthogonal", []float64{5, 0, 0}, []float64{0, 0, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(Vec3(tt.a[0], tt.a[1], tt.a[2]), Vec3(tt.b[0], tt.b[1], tt.b[2]))
			if !near(got, tt.want) {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestProjectOffAxis(t *testing.T) {
	cam := CameraPose{Position: Zero3(), FovY: math.Pi / 2}

	sx, sy, depth, ok := cam.Project(Vec3(5, 10, 0), 200, 100)
	if !ok || !near(sx, 125) || !near(sy, 50) || !near(depth, 10) {
		t.Errorf("Expected (125,50) depth 10, got (%f,%f) depth %f ok %v", sx, sy, depth, ok)
	}

	sx, sy, depth, ok = cam.Project(Vec3(0, 20, 20), 200, 100)
	if !ok || !near(sx, 100) || !near(sy, 0) || !near(depth, 20) {
		t.Errorf("Expected (100,0) depth 20, got (%f,%f) depth %f ok %v", sx, sy, depth, ok)
	}
}

func TestOrbitCameraLooksAtTarget(t *testing.T) {
	target := Vec3(5, 5, 0)
	cam := OrbitCamera(target, 20, 0.3, -0.4, math.Pi/3)
	if !near(Distance(cam.Position, target), 20) {
		t.Errorf("Expected distance 20, got %f", Distance(cam.Position, target))
	}
	sx, sy, _, ok := cam.Project(target, 640, 480)
	if !ok || math.Abs(sx-320) > 1e-6 || math.Abs(sy-240) > 1e-6 {
		t.Errorf("Expected target at screen center, got (%f,%f)", sx, sy)
	}
}
