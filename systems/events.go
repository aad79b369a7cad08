package systems

import (
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

type TeleportedEvent struct {
	Direction portal.Orientation
	Exit      math.Vec2 // body center after the crossing
}

type ShotEvent struct {
	Outcome portal.Outcome
}

type LaunchedEvent struct {
	Velocity math.Vec2
	Origin   math.Vec2
}

type RespawnedEvent struct {
	Killed bool // hit a hazard, as opposed to a manual respawn
}

var (
	Teleported = events.NewEventType[TeleportedEvent]()
	Shot       = events.NewEventType[ShotEvent]()
	Launched   = events.NewEventType[LaunchedEvent]()
	Respawned  = events.NewEventType[RespawnedEvent]()
)

// BridgeEvents forwards simulation callbacks onto donburi events. The events
// queue until ProcessEvents runs, so subscribers never observe a half-done tick.
func BridgeEvents(w donburi.World, world *sim.World) sim.Events {
	return sim.Events{
		OnTeleported: func(dir portal.Orientation) {
			Teleported.Publish(w, TeleportedEvent{Direction: dir, Exit: world.Body().Center()})
		},
		OnShot: func(o portal.Outcome) {
			Shot.Publish(w, ShotEvent{Outcome: o})
		},
		OnLaunched: func(vel math.Vec2) {
			Launched.Publish(w, LaunchedEvent{Velocity: vel, Origin: world.Body().Center()})
		},
	}
}

// SubscribeEvents registers the ECS reactions to simulation events.
func SubscribeEvents(e *ecs.ECS) {
	Teleported.Subscribe(e.World, func(_ donburi.World, ev TeleportedEvent) { onTeleported(e, ev) })
	Shot.Subscribe(e.World, func(_ donburi.World, ev ShotEvent) { onShot(e, ev) })
	Launched.Subscribe(e.World, func(_ donburi.World, ev LaunchedEvent) { onLaunched(e, ev) })
	Respawned.Subscribe(e.World, func(_ donburi.World, ev RespawnedEvent) { onRespawned(e, ev) })
}

// ProcessEvents dispatches every queued event to its subscribers.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
