package factory

import (
	"github.com/automoto/portalfling/archetypes"
	"github.com/automoto/portalfling/components"
	"github.com/automoto/portalfling/shared/tilemap"
	"github.com/automoto/portalfling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpike creates a lethal trigger. Coordinates are map-local.
func CreateSpike(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSpike)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = spike

	components.Object.SetValue(spike, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return spike
}

// CreateFinishLine creates a finish line entity with collision detection
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvFinishLine)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = finishLine

	components.Object.SetValue(finishLine, components.ObjectData{Object: obj})
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Activated: false,
	})
	addToSpace(ecs, obj)
	return finishLine
}

// CreateTileTriggers creates one trigger per horizontal run of spike tiles
// and of finish tiles.
func CreateTileTriggers(ecs *ecs.ECS, grid *tilemap.Grid) {
	ts := grid.TileSize
	for _, r := range TileRuns(grid.Positions(tilemap.Spike)) {
		CreateSpike(ecs, float64(r.X)*ts, float64(r.Y)*ts, float64(r.Len)*ts, ts)
	}
	for _, r := range TileRuns(grid.Positions(tilemap.Finish)) {
		CreateFinishLine(ecs, float64(r.X)*ts, float64(r.Y)*ts, float64(r.Len)*ts, ts)
	}
}

// Run is a horizontal strip of Len tiles starting at (X, Y).
type Run struct {
	X, Y, Len int
}

// TileRuns merges tile positions, given row by row as Grid.Positions returns
// them, into horizontal runs.
func TileRuns(positions [][2]int) []Run {
	var runs []Run
	for _, p := range positions {
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.Y == p[1] && last.X+last.Len == p[0] {
				last.Len++
				continue
			}
		}
		runs = append(runs, Run{X: p[0], Y: p[1], Len: 1})
	}
	return runs
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
