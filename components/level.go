package components

import (
	"github.com/automoto/portalfling/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       map[string]*leveldata.Level
	Names        []string // sorted, the play order
	// Background is the tile layer pre-rendered at map-local pixels.
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
