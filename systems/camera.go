package systems

import (
	"math"

	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	s := GetSimulation(e)
	if s == nil {
		return
	}
	body := s.World.Body()
	ch := s.World.Character()

	// Only update look-ahead when the body is moving - freeze offset when idle
	if math.Abs(body.Vel.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := float64(ch.Facing) * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	pos := s.World.Interpolated(s.Alpha)
	targetX := pos.X + body.W/2 + camera.LookAheadX
	targetY := pos.Y + body.H/2

	targetX, targetY = clampCamera(e, targetX, targetY)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	s := GetSimulation(e)
	if !ok || s == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	c := s.World.Body().Center()
	camera.Position.X, camera.Position.Y = clampCamera(e, c.X, c.Y)
	camera.LookAheadX = 0
}

// clampCamera keeps the view inside the map. A map smaller than the screen
// on an axis is centered on that axis.
func clampCamera(e *ecs.ECS, x, y float64) (float64, float64) {
	s := GetSimulation(e)
	if s == nil {
		return x, y
	}
	grid := s.World.Grid()
	levelWidth, levelHeight := grid.WorldSize()
	top := grid.OffsetY()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	x = clampAxis(x, 0, levelWidth, screenWidth)
	y = clampAxis(y, top, top+levelHeight, screenHeight)
	return x, y
}

func clampAxis(v, lo, hi, view float64) float64 {
	if hi-lo <= view {
		return (lo + hi) / 2
	}
	return math.Max(lo+view/2, math.Min(hi-view/2, v))
}

// updateScreenShake sets the camera's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Offset.X, camera.Offset.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
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
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
