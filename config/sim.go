package config

import (
	"github.com/automoto/portalfling/shared/character"
	"github.com/automoto/portalfling/shared/physics"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/shared/sim"
)

// SimConfig assembles the simulation tuning from the global configuration.
func SimConfig() sim.Config {
	c := sim.Config{
		TileSize:     Level.TileSize,
		CanvasHeight: Level.CanvasHeight,
		Physics: physics.Config{
			Gravity:      Physics.Gravity,
			MaxFallSpeed: Physics.MaxFallSpeed,
		},
		Fling: character.Config{
			AimStep:        Fling.AimStep,
			AngleMargin:    Fling.AngleMargin,
			ChargeRate:     Fling.ChargeRate,
			MinPower:       Fling.MinPower,
			MaxPower:       Fling.MaxPower,
			LaunchFactor:   Fling.LaunchFactor,
			DetachTicks:    Fling.DetachTicks,
			NoClingTicks:   Fling.NoClingTicks,
			ClingSlide:     Fling.ClingSlide,
			GroundFriction: Fling.GroundFriction,
			DashSpeed:      Fling.DashSpeed,
			GroundProbe:    Fling.GroundProbe,
		},
		Pair: portal.PairConfig{
			TriggerNormal:  Portal.TriggerNormal,
			TriggerTangent: Portal.TriggerTangent,
			ExitPad:        Portal.ExitPad,
			Cooldown:       Portal.Cooldown,
		},
		Shot: portal.ShotConfig{
			Speed:       Portal.ShotSpeed,
			MaxDistance: Portal.ShotMaxDistance,
		},
		BodyW: Player.Width,
		BodyH: Player.Height,
	}
	if Player.HitBoxW > 0 && Player.HitBoxH > 0 {
		c.HitBox = &physics.Rect{
			X: Player.HitBoxX,
			Y: Player.HitBoxY,
			W: Player.HitBoxW,
			H: Player.HitBoxH,
		}
	}
	return c
}
