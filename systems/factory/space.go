package factory

import (
	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/shared/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateTriggerSpace creates a space covering the grid in map-local pixels,
// one cell per tile.
func CreateTriggerSpace(ecs *ecs.ECS, grid *tilemap.Grid) *donburi.Entry {
	w, h := grid.WorldSize()
	ts := int(grid.TileSize)
	return CreateSpace(ecs, int(w), int(h), ts, ts)
}
