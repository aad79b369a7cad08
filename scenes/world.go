package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/logger"
	"github.com/automoto/portalfling/systems"
	"github.com/automoto/portalfling/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
	err          error
}

// NewPlatformerScene creates a scene playing the level at levelIndex.
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return
	}
	ps.ecs.Update()

	levelComplete := systems.GetOrCreateLevelComplete(ps.ecs)
	if !levelComplete.Advance {
		return
	}
	next := ps.levelIndex + 1
	if levelComplete.Last {
		next = 0
	}
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, next))
}

// Err returns the error that stopped the level from loading.
func (ps *PlatformerScene) Err() error {
	return ps.err
}

// Quit reports whether the player chose to leave the game.
func (ps *PlatformerScene) Quit() bool {
	return ps.ecs != nil && systems.QuitRequested(ps.ecs)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)

	// Gameplay stops while paused or once the goal is reached
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))

	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateLevelComplete)

	// World space
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPortals)
	ecs.AddRenderer(cfg.Default, systems.DrawShots)
	ecs.AddRenderer(cfg.Default, systems.DrawMarkers)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawAim)

	// Screen space
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)

	level, err := factory.CreateLevelAtIndex(ecs, ps.levelIndex)
	if err != nil {
		logger.Log.WithError(err).WithField("index", ps.levelIndex).Error("could not create level")
		ps.err = err
		return
	}

	levelData := components.Level.Get(level)
	ps.levelIndex = levelData.LevelIndex

	sim := systems.GetSimulation(ecs)
	sim.World.SetEvents(systems.BridgeEvents(ecs.World, sim.World))
	systems.SubscribeEvents(ecs)
	systems.SnapCamera(ecs)

	ps.ecs = ecs
	logger.Log.WithFields(logrus.Fields{
		"scene": "platformer",
		"level": levelData.CurrentLevel.Name,
	}).Debug("scene configured")
}
