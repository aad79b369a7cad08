package systems

import (
	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay and saves the choice.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if !GetAction(input, cfg.ActionDebug).JustPressed {
		return
	}
	settings.Debug = !settings.Debug
	err := SaveSettings(&SavedSettings{
		Fullscreen:      settings.Fullscreen,
		ResolutionIndex: settings.ResolutionIndex,
		Debug:           settings.Debug,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global configuration.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:           cfg.Debug.Enabled,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
