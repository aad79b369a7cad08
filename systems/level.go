package systems

import (
	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	s := GetSimulation(ecs)
	if levelData.Background == nil || s == nil {
		return
	}

	cam := cameraPosition(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	opts := &ebiten.DrawImageOptions{}
	// The background is map-local; move it down to the grid's offset, then
	// apply the camera.
	opts.GeoM.Translate(0, s.World.Grid().OffsetY())
	opts.GeoM.Translate(-cam.X, -cam.Y)
	opts.GeoM.Translate(float64(width)/2, float64(height)/2)
	screen.DrawImage(levelData.Background, opts)
}
