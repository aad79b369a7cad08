package factory

import (
	"fmt"

	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/shared/leveldata"
	"github.com/automoto/portalfling/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewWorld builds the simulation for a level: tuning from the global config,
// tile classes from the level's tileset and the tutorial spacing rule. The
// body is not placed yet.
func NewWorld(level *leveldata.Level) (*sim.World, error) {
	simCfg := cfg.SimConfig()
	if level.TileSize > 0 {
		simCfg.TileSize = float64(level.TileSize)
	}

	world, err := sim.NewWorld(level.Map, simCfg, sim.Events{})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	if level.SolidIDs != nil {
		world.SetSolidTileIDs(level.SolidIDs...)
	}
	if level.BannedIDs != nil {
		world.Grid().SetBannedTileIDs(level.BannedIDs...)
	}
	if level.Tutorial {
		world.SetMinPortalSeparation(level.MinPortalSeparation * simCfg.TileSize)
	}
	return world, nil
}

// CreateSimulation spawns the entity owning the level's world and clock.
func CreateSimulation(ecs *ecs.ECS, world *sim.World) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{
		World: world,
		Clock: sim.NewFixedStep(cfg.Level.TickRate, cfg.Level.MaxSteps),
	})
	return entry
}
