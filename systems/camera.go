package systems

import (
	"math"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pitch limits keep the eye above the floor and short of straight down.
const (
	minCameraPitch = -1.45
	maxCameraPitch = -0.15
)

// CameraInput is one frame of camera controls.
type CameraInput struct {
	Orbit float64 // -1 left, +1 right
	Tilt  float64 // -1 down, +1 up
	Zoom  float64 // Positive moves closer
}

func readCameraInput() CameraInput {
	var in CameraInput
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Orbit--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Orbit++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Tilt++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Tilt--
	}
	_, wheel := ebiten.Wheel()
	in.Zoom = wheel
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		in.Zoom++
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		in.Zoom--
	}
	return in
}

// UpdateCamera applies keyboard and wheel input to the orbit camera.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	ApplyCameraInput(camera, readCameraInput())
	updateScreenShake(cameraEntry, camera)
}

// ApplyCameraInput moves the camera and clamps it to its limits.
func ApplyCameraInput(camera *components.CameraData, in CameraInput) {
	camera.Yaw = gamemath.WrapAngle(camera.Yaw + in.Orbit*cfg.Camera.OrbitSpeed)
	camera.Pitch = gamemath.Clamp(camera.Pitch+in.Tilt*cfg.Camera.OrbitSpeed, minCameraPitch, maxCameraPitch)
	camera.Distance = gamemath.Clamp(camera.Distance-in.Zoom*cfg.Camera.ZoomStep, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
}

// CameraPose returns the eye for this frame, shake included.
func CameraPose(e *ecs.ECS) (gamemath.CameraPose, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.CameraPose{}, false
	}
	camera := components.Camera.Get(entry)
	target := camera.Target.Clone()
	target[0] += camera.ShakeX
	target[1] += camera.ShakeY
	return gamemath.OrbitCamera(target, camera.Distance, camera.Yaw, camera.Pitch, cfg.Render.FovY), true
}

// updateScreenShake sets this frame's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeX, camera.ShakeY = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	camera.ShakeX = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.ShakeY = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
