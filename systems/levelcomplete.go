package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/fonts"
	"github.com/automoto/portalfling/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// CompleteLevel shows the overlay and records progress.
func CompleteLevel(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}
	levelComplete.IsComplete = true

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	levelComplete.Last = level.LevelIndex+1 >= len(level.Names)

	fields := logrus.Fields{"level": level.CurrentLevel.Name}
	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		fields["deaths"] = player.Deaths
		fields["portals"] = player.PortalsPlaced
	}
	logger.Log.WithFields(fields).Info("level complete")

	if err := SaveLevelCompleted(level.LevelIndex, len(level.Names)); err != nil {
		logger.Log.WithError(err).Warn("could not save progress")
	}
}

// UpdateLevelComplete handles input when level complete overlay is shown
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionContinue).JustPressed {
		levelComplete.Advance = true
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	drawCentered(screen, cfg.LevelComplete.Title, fonts.Title.Get(), width, cfg.LevelComplete.TitleY, cfg.LevelComplete.TitleColor)

	msg := cfg.LevelComplete.LastMessage
	if !levelComplete.Last {
		var deaths, placed int
		if playerEntry, ok := components.Player.First(e.World); ok {
			player := components.Player.Get(playerEntry)
			deaths, placed = player.Deaths, player.PortalsPlaced
		}
		msg = fmt.Sprintf(cfg.LevelComplete.Message, placed, deaths)
	}
	drawCentered(screen, msg, fonts.Bold.Get(), width, cfg.LevelComplete.MessageY, cfg.LevelComplete.TextColor)

	input := getOrCreateInput(e)
	hint := getLevelCompleteHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Regular.Get(), width, cfg.LevelComplete.HintY, cfg.LevelComplete.HintColor)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to continue"
	case components.InputXbox:
		return "Press A to continue"
	}
	return cfg.LevelComplete.ContinueHint
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}

// drawCentered draws s horizontally centered with its top at y.
func drawCentered(screen *ebiten.Image, s string, face text.Face, width, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((width-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
