package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/fonts"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const ellipseSegments = 24

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	s := GetSimulation(ecs)
	if s == nil {
		return
	}
	cam := cameraPosition(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offsetY := s.World.Grid().OffsetY()

	// Trigger objects live in map-local space
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		viewX := cam.X - float64(width)/2
		viewY := cam.Y - float64(height)/2 - offsetY
		viewW := float64(width)
		viewH := float64(height)

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSpike) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvFinishLine) {
				c = color.RGBA{0, 255, 0, 255}
			}

			x, y := WorldToScreen(dmath.Vec2{X: obj.X, Y: obj.Y + offsetY}, cam)
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	for _, p := range s.World.Portals() {
		drawTrigger(screen, p, cam)
	}

	face := fonts.Mono.Get()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.UI.HUDMargin, float64(height)/2)
	op.LineSpacing = cfg.UI.DebugFontSize * 1.3
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, debugText(s), face, op)
}

// drawTrigger outlines the elliptical teleport trigger of a portal.
func drawTrigger(screen *ebiten.Image, p portal.Portal, cam dmath.Vec2) {
	n, t := p.Orientation.Normal(), p.Orientation.Tangent()
	rn, rt := cfg.Portal.TriggerNormal, cfg.Portal.TriggerTangent
	point := func(i int) (float32, float32) {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		cn, ct := math.Cos(a)*rn, math.Sin(a)*rt
		w := dmath.Vec2{X: p.Pos.X + n.X*cn + t.X*ct, Y: p.Pos.Y + n.Y*cn + t.Y*ct}
		x, y := WorldToScreen(w, cam)
		return float32(x), float32(y)
	}
	c := PortalColor(p.Slot)
	x0, y0 := point(0)
	for i := 1; i <= ellipseSegments; i++ {
		x1, y1 := point(i)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
		x0, y0 = x1, y1
	}
}

func debugText(s *components.SimulationData) string {
	w := s.World
	b := w.Body()
	ch := w.Character()

	var sb strings.Builder
	fmt.Fprintf(&sb, "tick %d  alpha %.2f\n", w.Ticks(), s.Alpha)
	fmt.Fprintf(&sb, "state %s  anim %s  facing %+d\n", ch.State, ch.Anim, ch.Facing)
	fmt.Fprintf(&sb, "pos %.1f,%.1f  vel %.2f,%.2f\n", b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	fmt.Fprintf(&sb, "grounded %t  wall %+d  cling %+d\n", b.Grounded, b.WallSide, ch.ClingSide)
	fmt.Fprintf(&sb, "aim %.2f rad  power %.2f  aiming %t\n", ch.AimAngle, ch.AimPower, ch.Aiming)
	fmt.Fprintf(&sb, "detach %d  nocling %d\n", ch.Detach, ch.NoCling)
	if slot, ok := w.Trigger(); ok {
		fmt.Fprintf(&sb, "in trigger %s\n", slot)
	}
	for _, p := range w.Portals() {
		fmt.Fprintf(&sb, "portal %s %s at %.0f,%.0f anchor %d,%d\n", p.Slot, p.Orientation, p.Pos.X, p.Pos.Y, p.AnchorX, p.AnchorY)
	}
	if sep := w.MinPortalSeparation(); sep > 0 {
		fmt.Fprintf(&sb, "min separation %.0f px\n", sep)
	}
	return sb.String()
}
