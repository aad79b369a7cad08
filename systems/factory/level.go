package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/assets"
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevels = errors.New("no levels found")

func CreateLevel(ecs *ecs.ECS) (*donburi.Entry, error) {
	return CreateLevelAtIndex(ecs, 0)
}

// CreateLevelAtIndex loads the embedded levels and builds everything one of
// them needs: the simulation, the trigger space with its spikes and finish
// lines, the player and the camera. An out-of-range index falls back to the
// first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) (*donburi.Entry, error) {
	levels, names, err := assets.NewLevelLoader().LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoLevels
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(names) {
		levelIndex = 0
	}
	current := levels[names[levelIndex]]

	world, err := NewWorld(current)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	grid := world.Grid()

	spawn := current.Spawn()
	spawnX, spawnY := spawn.X, spawn.Y+grid.OffsetY()
	world.Respawn(spawnX, spawnY)

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		Names:        names,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
		Background:   RenderTiles(grid),
	})

	CreateSimulation(ecs, world)
	CreateTriggerSpace(ecs, grid)
	CreateTileTriggers(ecs, grid)

	body := world.Body()
	CreatePlayer(ecs, spawnX, spawnY, body.Bounds(), grid.OffsetY())
	center := body.Center()
	CreateCamera(ecs, center.X, center.Y)

	logger.Log.WithFields(logrus.Fields{
		"level":    current.Name,
		"index":    levelIndex,
		"tutorial": current.Tutorial,
	}).Info("level started")

	return level, nil
}
