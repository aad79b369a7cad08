package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FLING_PHYSICS_GRAVITY.
const EnvPrefix = "FLING"

func floatKnobs() map[string]*float64 {
	return map[string]*float64{
		"physics.gravity":      &Physics.Gravity,
		"physics.maxfallspeed": &Physics.MaxFallSpeed,

		"fling.aimstep":        &Fling.AimStep,
		"fling.anglemargin":    &Fling.AngleMargin,
		"fling.chargerate":     &Fling.ChargeRate,
		"fling.minpower":       &Fling.MinPower,
		"fling.maxpower":       &Fling.MaxPower,
		"fling.launchfactor":   &Fling.LaunchFactor,
		"fling.clingslide":     &Fling.ClingSlide,
		"fling.groundfriction": &Fling.GroundFriction,
		"fling.dashspeed":      &Fling.DashSpeed,
		"fling.groundprobe":    &Fling.GroundProbe,

		"portal.triggernormal":   &Portal.TriggerNormal,
		"portal.triggertangent":  &Portal.TriggerTangent,
		"portal.exitpad":         &Portal.ExitPad,
		"portal.shotspeed":       &Portal.ShotSpeed,
		"portal.shotmaxdistance": &Portal.ShotMaxDistance,

		"player.width":  &Player.Width,
		"player.height": &Player.Height,

		"camera.followsmoothing":    &Camera.FollowSmoothing,
		"camera.lookaheaddistancex": &Camera.LookAheadDistanceX,
	}
}

func intKnobs() map[string]*int {
	return map[string]*int{
		"fling.detachticks":  &Fling.DetachTicks,
		"fling.noclingticks": &Fling.NoClingTicks,
		"portal.cooldown":    &Portal.Cooldown,
		"level.tickrate":     &Level.TickRate,
		"level.maxsteps":     &Level.MaxSteps,
		"debug.levelindex":   &Debug.LevelIndex,
	}
}

func boolKnobs() map[string]*bool {
	return map[string]*bool{
		"debug.enabled": &Debug.Enabled,
	}
}

// LoadOverrides applies tuning overrides on top of the defaults set in init.
// path may be empty, in which case only environment variables are read. Keys
// are the lowercased section and field names, e.g. "fling.maxpower".
func LoadOverrides(path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for key, p := range floatKnobs() {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
		if v.IsSet(key) {
			*p = v.GetFloat64(key)
		}
	}
	for key, p := range intKnobs() {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
		if v.IsSet(key) {
			*p = v.GetInt(key)
		}
	}
	for key, p := range boolKnobs() {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
		if v.IsSet(key) {
			*p = v.GetBool(key)
		}
	}
	return nil
}
