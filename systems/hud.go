package systems

import (
	"fmt"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/fonts"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudSlotSize = 10
	hudSlotGap  = 4

	tutorialHint = "Hold X to aim, release to fling. Q / E fire portals."
)

// DrawHUD renders the level name, the portal slots and the run counters in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSimulation(ecs)
	levelEntry, ok := components.Level.First(ecs.World)
	if s == nil || !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	face := fonts.Regular.Get()
	margin := cfg.UI.HUDMargin

	name := ""
	if level.CurrentLevel != nil {
		name = level.CurrentLevel.Name
	}
	drawText(screen, fmt.Sprintf("%d/%d  %s", level.LevelIndex+1, len(level.Names), name), face, margin, margin)

	_, lineHeight := text.Measure("Ag", face, 0)
	slotsY := margin + lineHeight + hudSlotGap
	drawPortalSlots(screen, s.World.Portals(), float32(margin), float32(slotsY))

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		stats := fmt.Sprintf("Portals: %d   Deaths: %d", player.PortalsPlaced, player.Deaths)
		drawText(screen, stats, face, margin+2*(hudSlotSize+hudSlotGap)+hudSlotGap, slotsY-2)
	}

	if level.CurrentLevel != nil && level.CurrentLevel.Tutorial {
		w, _ := text.Measure(tutorialHint, face, 0)
		drawText(screen, tutorialHint, face, (float64(cfg.C.Width)-w)/2, float64(cfg.C.Height)-margin-lineHeight)
	}
}

// drawPortalSlots shows a filled square for each placed portal and an
// outline for each empty slot.
func drawPortalSlots(screen *ebiten.Image, placed []portal.Portal, x, y float32) {
	for i, slot := range []portal.Slot{portal.SlotA, portal.SlotB} {
		sx := x + float32(i)*(hudSlotSize+hudSlotGap)
		c := PortalColor(slot)
		if hasSlot(placed, slot) {
			vector.FillRect(screen, sx, y, hudSlotSize, hudSlotSize, c, false)
			continue
		}
		vector.StrokeRect(screen, sx, y, hudSlotSize, hudSlotSize, 1, c, false)
	}
}

func hasSlot(portals []portal.Portal, slot portal.Slot) bool {
	for _, p := range portals {
		if p.Slot == slot {
			return true
		}
	}
	return false
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.UI.HUDTextColor)
	text.Draw(screen, s, face, op)
}
