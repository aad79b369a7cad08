package systems

import (
	"image/color"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/shared/gamemath"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	aimPreviewTicks = 36
	aimPreviewEvery = 4
	shotWidth       = 2
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
)

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// DrawPortals renders both portals as bars just outside their wall.
func DrawPortals(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSimulation(ecs)
	if s == nil {
		return
	}
	cam := cameraPosition(ecs)
	for _, p := range s.World.Portals() {
		x, y, w, h := portalRect(p, float64(cfg.UI.PortalLength), float64(cfg.UI.PortalWidth))
		sx, sy := WorldToScreen(math.Vec2{X: x, Y: y}, cam)
		vector.FillRect(screen, float32(sx), float32(sy), float32(w), float32(h), PortalColor(p.Slot), false)
	}
}

// portalRect returns the world rectangle of a portal bar of the given length
// along the wall and thickness along the normal.
func portalRect(p portal.Portal, length, thickness float64) (x, y, w, h float64) {
	switch p.Orientation {
	case portal.Right:
		return p.Pos.X, p.Pos.Y - length/2, thickness, length
	case portal.Left:
		return p.Pos.X - thickness, p.Pos.Y - length/2, thickness, length
	case portal.Up:
		return p.Pos.X - length/2, p.Pos.Y - thickness, length, thickness
	default:
		return p.Pos.X - length/2, p.Pos.Y, length, thickness
	}
}

// DrawShots renders each shot in flight as a line from its origin to its head.
func DrawShots(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSimulation(ecs)
	if s == nil {
		return
	}
	cam := cameraPosition(ecs)
	for _, shot := range s.World.Shots() {
		x0, y0 := WorldToScreen(shot.Start, cam)
		x1, y1 := WorldToScreen(shot.Head, cam)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), shotWidth, PortalColor(shot.Slot), false)
	}
}

// DrawPlayer renders the body at its interpolated position, styled by the
// controller's animation.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSimulation(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if s == nil || !ok {
		return
	}
	body := s.World.Body()
	style := cfg.StyleFor(s.World.Character().Anim)
	pos := s.World.Interpolated(s.Alpha)

	scaleX, scaleY := style.ScaleX, style.ScaleY
	if playerEntry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(playerEntry)
		scaleX *= ss.ScaleX
		scaleY *= ss.ScaleY
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at bottom-center so the feet stay on the ground while scaled
	drawOp.GeoM.Translate(-0.5, -1)
	drawOp.GeoM.Scale(body.W*scaleX, body.H*scaleY)
	x, y := WorldToScreen(math.Vec2{X: pos.X + body.W/2, Y: pos.Y + body.H}, cameraPosition(ecs))
	drawOp.GeoM.Translate(x, y)

	drawOp.ColorScale.ScaleWithColor(playerColor(playerEntry, style.Color))
	screen.DrawImage(pixel(), drawOp)
}

func playerColor(entry *donburi.Entry, base color.RGBA) color.RGBA {
	if !entry.HasComponent(components.Flash) {
		return base
	}
	flash := components.Flash.Get(entry)
	return lerpColor(base, flash.Color, flash.Strength)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// DrawAim previews the launch arc while the charge input is held.
func DrawAim(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSimulation(ecs)
	if s == nil {
		return
	}
	ch := s.World.Character()
	if !ch.Aiming {
		return
	}
	cam := cameraPosition(ecs)
	fling := s.World.Config().Fling
	gravity := s.World.Config().Physics.Gravity

	p := s.World.Body().Center()
	vx, vy := gamemath.LaunchVelocity(ch.AimAngle, ch.AimPower, fling.LaunchFactor)
	for i := 1; i <= aimPreviewTicks; i++ {
		vy += gravity
		p.X += vx
		p.Y += vy
		if i%aimPreviewEvery != 0 {
			continue
		}
		x, y := WorldToScreen(p, cam)
		vector.FillRect(screen, float32(x)-1, float32(y)-1, 2, 2, cfg.UI.AimColor, false)
	}
}

// DrawMarkers renders the fading impact rings.
func DrawMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	cam := cameraPosition(ecs)
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Marker) {
			return
		}
		m := components.Marker.Get(e)
		alpha := 1.0
		if e.HasComponent(components.Fade) {
			alpha = components.Fade.Get(e).Alpha
		}
		c := m.Color
		c.A = uint8(float64(c.A) * gamemath.Clamp(alpha, 0, 1))
		// Premultiplied alpha
		c.R = uint8(uint16(c.R) * uint16(c.A) / 255)
		c.G = uint8(uint16(c.G) * uint16(c.A) / 255)
		c.B = uint8(uint16(c.B) * uint16(c.A) / 255)

		x, y := WorldToScreen(math.Vec2{X: m.X, Y: m.Y}, cam)
		radius := m.Radius * (2 - alpha)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1.5, c, true)
	})
}
