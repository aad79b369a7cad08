package factory

import (
	"image/color"

	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderTiles draws every non-empty tile of the grid into a new image of the
// map's pixel size.
func RenderTiles(grid *tilemap.Grid) *ebiten.Image {
	w, h := grid.WorldSize()
	img := ebiten.NewImage(int(w), int(h))
	ts := float32(grid.TileSize)
	for ty := 0; ty < grid.Map.Height; ty++ {
		for tx := 0; tx < grid.Map.Width; tx++ {
			id := grid.TileAt(tx, ty)
			if id == tilemap.Empty {
				continue
			}
			vector.FillRect(img, float32(tx)*ts, float32(ty)*ts, ts, ts, TileColor(grid, id), false)
		}
	}
	return img
}

// TileColor picks the draw color of a tile id. Ids outside the reserved set
// are colored by how the grid classifies them.
func TileColor(grid *tilemap.Grid, id int) color.RGBA {
	switch id {
	case tilemap.Solid:
		return cfg.UI.SolidTile
	case tilemap.Grey:
		return cfg.UI.GreyTile
	case tilemap.Finish:
		return cfg.UI.FinishTile
	case tilemap.Spike:
		return cfg.UI.SpikeTile
	}
	switch {
	case grid.IsSolid(id) && grid.IsBanned(id):
		return cfg.UI.GreyTile
	case grid.IsSolid(id):
		return cfg.UI.SolidTile
	}
	return cfg.Grey
}
