package factory

import (
	"errors"
	"testing"

	"github.com/automoto/portalfling/shared/leveldata"
	"github.com/automoto/portalfling/shared/tilemap"
)

func boxLevel(w, h int) *leveldata.Level {
	tiles := make([]int, w*h)
	for x := 0; x < w; x++ {
		tiles[x] = tilemap.Solid
		tiles[(h-1)*w+x] = tilemap.Solid
	}
	for y := 0; y < h; y++ {
		tiles[y*w] = tilemap.Solid
		tiles[y*w+w-1] = tilemap.Solid
	}
	return &leveldata.Level{
		Name:        "box",
		Map:         tilemap.TileMap{Width: w, Height: h, Tiles: tiles},
		TileSize:    16,
		SpawnPoints: []leveldata.SpawnPoint{{X: 32, Y: 32}},
	}
}

func TestNewWorld(t *testing.T) {
	level := boxLevel(10, 8)
	world, err := NewWorld(level)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if world.MinPortalSeparation() != 0 {
		t.Fatalf("separation %v on a normal level", world.MinPortalSeparation())
	}
	if !world.Grid().IsSolid(tilemap.Solid) || world.Grid().IsSolid(tilemap.Spike) {
		t.Fatalf("default solid set not applied")
	}
}

func TestNewWorldTileClasses(t *testing.T) {
	level := boxLevel(10, 8)
	level.SolidIDs = []int{1, 7}
	level.BannedIDs = []int{7}
	level.Tutorial = true
	level.MinPortalSeparation = 3

	world, err := NewWorld(level)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	grid := world.Grid()
	if !grid.IsSolid(7) || grid.IsSolid(tilemap.Grey) {
		t.Fatalf("solid ids from the tileset not applied")
	}
	if !grid.IsBanned(7) || grid.IsBanned(tilemap.Spike) {
		t.Fatalf("banned ids from the tileset not applied")
	}
	if got := world.MinPortalSeparation(); got != 48 {
		t.Fatalf("separation %v px, want 48", got)
	}
}

func TestNewWorldMalformed(t *testing.T) {
	level := boxLevel(4, 4)
	level.Map.Tiles = level.Map.Tiles[:5]
	if _, err := NewWorld(level); !errors.Is(err, tilemap.ErrMalformedMap) {
		t.Fatalf("err = %v, want ErrMalformedMap", err)
	}
}
