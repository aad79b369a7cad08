package systems

import (
	"time"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/shared/character"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateSimulation feeds the frame's input to the level simulation and runs
// as many fixed ticks as the elapsed frame time allows.
func UpdateSimulation(e *ecs.ECS) {
	s := GetSimulation(e)
	if s == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRespawn).JustPressed {
		RespawnPlayer(e, false)
	}

	if req := shotRequest(input, cameraPosition(e), s.World.Body().Center()); req != nil {
		s.Pending = req
	}

	frame := sim.Input{Input: characterInput(input)}
	s.Alpha = s.Clock.Advance(frameDuration(), func() {
		in := frame
		in.Shoot = s.Pending
		s.Pending = nil
		s.World.Tick(in)
	})
}

// GetSimulation returns the running simulation, or nil before the level loads.
func GetSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// RespawnPlayer puts the player back on the level spawn. Both portals and any
// shot in flight are cleared.
func RespawnPlayer(e *ecs.ECS, killed bool) {
	s := GetSimulation(e)
	playerEntry, ok := components.Player.First(e.World)
	if s == nil || !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	s.World.Respawn(player.SpawnX, player.SpawnY)
	s.Pending = nil
	if killed {
		player.Deaths++
	}
	Respawned.Publish(e.World, RespawnedEvent{Killed: killed})
}

func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// characterInput decodes the held actions into controller input.
func characterInput(input *components.InputData) character.Input {
	return character.Input{
		Left:  input.Current[cfg.ActionAimLeft],
		Right: input.Current[cfg.ActionAimRight],
		Up:    input.Current[cfg.ActionUp],
		Down:  input.Current[cfg.ActionDown],
		Jump:  input.Current[cfg.ActionCharge],
	}
}

// shotRequest returns a request for the portal fired this frame, if any.
// Portal A wins when both are pressed on the same frame.
func shotRequest(input *components.InputData, cam, center math.Vec2) *sim.ShotRequest {
	slot := portal.NoSlot
	switch {
	case GetAction(input, cfg.ActionPortalA).JustPressed:
		slot = portal.SlotA
	case GetAction(input, cfg.ActionPortalB).JustPressed:
		slot = portal.SlotB
	}
	if slot == portal.NoSlot {
		return nil
	}
	return &sim.ShotRequest{Slot: slot, Target: shotTarget(input, cam, center)}
}

// shotTarget aims with the right stick when a gamepad is in use and it is
// deflected, otherwise at the cursor.
func shotTarget(input *components.InputData, cam, center math.Vec2) math.Vec2 {
	if input.LastInputMethod != components.InputKeyboard && (input.StickX != 0 || input.StickY != 0) {
		return math.Vec2{
			X: center.X + input.StickX*cfg.Input.StickAimDistance,
			Y: center.Y + input.StickY*cfg.Input.StickAimDistance,
		}
	}
	return ScreenToWorld(float64(input.CursorX), float64(input.CursorY), cam)
}

// ScreenToWorld converts a point on the logical screen to world pixels for a
// camera centered on cam.
func ScreenToWorld(x, y float64, cam math.Vec2) math.Vec2 {
	return math.Vec2{
		X: x - float64(cfg.C.Width)/2 + cam.X,
		Y: y - float64(cfg.C.Height)/2 + cam.Y,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(p, cam math.Vec2) (x, y float64) {
	return p.X - cam.X + float64(cfg.C.Width)/2, p.Y - cam.Y + float64(cfg.C.Height)/2
}

func cameraPosition(e *ecs.ECS) math.Vec2 {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return math.Vec2{}
	}
	camera := components.Camera.Get(entry)
	return math.Vec2{X: camera.Position.X + camera.Offset.X, Y: camera.Position.Y + camera.Offset.Y}
}
