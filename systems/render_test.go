package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/portalfling/shared/portal"
	"github.com/yohamta/donburi/features/math"
)

func TestPortalRect(t *testing.T) {
	pos := math.Vec2{X: 100, Y: 200}
	for _, tt := range []struct {
		o          portal.Orientation
		x, y, w, h float64
	}{
		{portal.Right, 100, 184, 4, 32},
		{portal.Left, 96, 184, 4, 32},
		{portal.Up, 84, 196, 32, 4},
		{portal.Down, 84, 200, 32, 4},
	} {
		t.Run(tt.o.String(), func(t *testing.T) {
			x, y, w, h := portalRect(portal.Portal{Pos: pos, Orientation: tt.o}, 32, 4)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Fatalf("rect (%v, %v, %v, %v), want (%v, %v, %v, %v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	if got := lerpColor(a, b, 0); got != a {
		t.Fatalf("t=0 gave %v", got)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Fatalf("t=1 gave %v", got)
	}
	if got := lerpColor(a, b, 0.5); got != (color.RGBA{R: 100, G: 100, B: 100, A: 255}) {
		t.Fatalf("t=0.5 gave %v", got)
	}
	if got := lerpColor(a, b, 3); got != b {
		t.Fatalf("t is clamped, got %v", got)
	}
}

func TestHasSlot(t *testing.T) {
	placed := []portal.Portal{{Slot: portal.SlotB}}
	if hasSlot(placed, portal.SlotA) || !hasSlot(placed, portal.SlotB) {
		t.Fatalf("hasSlot wrong for %+v", placed)
	}
}
