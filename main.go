package main

import (
	"errors"
	"flag"
	"image"

	"github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/fonts"
	"github.com/automoto/portalfling/logger"
	"github.com/automoto/portalfling/scenes"
	"github.com/automoto/portalfling/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelIndex int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, levelIndex)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if s, ok := g.scene.(interface{ Err() error }); ok && s.Err() != nil {
		return s.Err()
	}
	if s, ok := g.scene.(interface{ Quit() bool }); ok && s.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// startLevel picks the level to open: the -level flag when given, otherwise
// the saved resume point.
func startLevel() int {
	if config.Debug.LevelIndex >= 0 {
		return config.Debug.LevelIndex
	}
	progress, err := systems.LoadGameProgress()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load progress")
	}
	if progress == nil {
		return config.Level.StartIndex
	}
	return progress.LevelIndex
}

func main() {
	configPath := flag.String("config", "", "YAML, TOML or JSON file overriding the built-in tuning")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	level := flag.Int("level", -1, "level index to start at, -1 resumes saved progress")
	flag.Parse()

	logger.Init(*logLevel, *logJSON)

	if err := config.LoadOverrides(*configPath); err != nil {
		logger.Log.WithError(err).Fatal("could not load configuration")
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *level >= 0 {
		config.Debug.LevelIndex = *level
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		logger.Log.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowTitle("Portal Fling")
	res := config.ResolutionAt(config.Settings.DefaultResolutionIndex)
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
	}
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(startLevel())); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
