package systems

import (
	"image/color"
	"math"

	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/logger"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, squash/stretch, fades)
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1 / float64(ebiten.TPS()))
	updateFlashEffects(ecs, dt)
	updateSquashStretchEffects(ecs)
	updateFades(ecs, dt)
}

func updateFlashEffects(ecs *ecs.ECS, dt float32) {
	var done []*donburi.Entry
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		v, finished := flash.Tween.Update(dt)
		flash.Strength = float64(v)
		if finished {
			done = append(done, e)
		}
	})
	for _, e := range done {
		e.RemoveComponent(components.Flash)
	}
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updateFades(ecs *ecs.ECS, dt float32) {
	var toDestroy []*donburi.Entry
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		v, finished := fade.Tween.Update(dt)
		fade.Alpha = float64(v)
		if finished {
			toDestroy = append(toDestroy, e)
		}
	})
	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	data := components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	}
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}

// TriggerFlash tints an entity with c, fading out over seconds.
func TriggerFlash(entry *donburi.Entry, c color.RGBA, seconds float32) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{
		Tween:    gween.New(1, 0, seconds, ease.OutQuad),
		Strength: 1,
		Color:    c,
	})
}

// SpawnMarker places a fading ring in world space.
func SpawnMarker(e *ecs.ECS, x, y, radius float64, c color.RGBA, seconds float32) *donburi.Entry {
	entry := archetypes.Marker.Spawn(e)
	components.Marker.SetValue(entry, components.MarkerData{X: x, Y: y, Radius: radius, Color: c})
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(1, 0, seconds, ease.Linear),
		Alpha: 1,
	})
	return entry
}

// PortalColor is the draw color of a slot.
func PortalColor(slot portal.Slot) color.RGBA {
	if slot == portal.SlotB {
		return config.UI.PortalB
	}
	return config.UI.PortalA
}

func onTeleported(e *ecs.ECS, ev TeleportedEvent) {
	logger.Log.WithFields(logrus.Fields{
		"system":    "portal",
		"direction": ev.Direction.String(),
	}).Debug("teleported")

	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Player.Get(playerEntry).Teleports++
		TriggerFlash(playerEntry, config.White, config.Effects.TeleportFlash)
	}
	SpawnMarker(e, ev.Exit.X, ev.Exit.Y, 10, config.White, config.Effects.TeleportFlash)
	TriggerScreenShake(e, config.ScreenShake.TeleportIntensity, config.ScreenShake.TeleportDuration)
}

func onShot(e *ecs.ECS, ev ShotEvent) {
	o := ev.Outcome
	logger.Log.WithFields(logrus.Fields{
		"system":    "portal",
		"slot":      o.Slot.String(),
		"hit":       o.Hit,
		"banned":    o.Banned,
		"too_close": o.TooClose,
		"tile":      o.TileID,
	}).Debug("shot resolved")

	if !o.Hit {
		return
	}
	if o.Placed() {
		if playerEntry, ok := tags.Player.First(e.World); ok {
			components.Player.Get(playerEntry).PortalsPlaced++
		}
		SpawnMarker(e, o.ImpactPoint.X, o.ImpactPoint.Y, 8, PortalColor(o.Slot), config.Effects.ShotImpact)
		return
	}
	SpawnMarker(e, o.ImpactPoint.X, o.ImpactPoint.Y, 5, config.UI.Banned, config.Effects.ShotMiss)
}

func onLaunched(e *ecs.ECS, ev LaunchedEvent) {
	if playerEntry, ok := tags.Player.First(e.World); ok {
		TriggerSquashStretch(playerEntry, config.SquashStretch.LaunchScaleX, config.SquashStretch.LaunchScaleY)
	}
	SpawnMarker(e, ev.Origin.X, ev.Origin.Y, 6, config.UI.AimColor, config.Effects.LaunchTrail)
}

func onRespawned(e *ecs.ECS, ev RespawnedEvent) {
	if !ev.Killed {
		return
	}
	TriggerScreenShake(e, config.ScreenShake.HazardIntensity, config.ScreenShake.HazardDuration)
	if playerEntry, ok := tags.Player.First(e.World); ok {
		TriggerFlash(playerEntry, config.LightRed, config.Effects.TeleportFlash*2)
	}
}
