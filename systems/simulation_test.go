package systems

import (
	"testing"

	"github.com/automoto/portalfling/components"
	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/yohamta/donburi/features/math"
)

func press(input *components.InputData, ids ...cfg.ActionID) {
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestCharacterInput(t *testing.T) {
	input := &components.InputData{}
	press(input, cfg.ActionAimLeft, cfg.ActionCharge, cfg.ActionDown)

	in := characterInput(input)
	if !in.Left || in.Right || in.Up || !in.Down || !in.Jump {
		t.Fatalf("decoded %+v", in)
	}
}

func TestShotRequest(t *testing.T) {
	cam := math.Vec2{X: 320, Y: 180}
	center := math.Vec2{X: 100, Y: 100}

	for _, tt := range []struct {
		name    string
		held    []cfg.ActionID
		prev    []cfg.ActionID
		want    portal.Slot
		wantNil bool
	}{
		{name: "none", wantNil: true},
		{name: "a", held: []cfg.ActionID{cfg.ActionPortalA}, want: portal.SlotA},
		{name: "b", held: []cfg.ActionID{cfg.ActionPortalB}, want: portal.SlotB},
		{name: "both prefers a", held: []cfg.ActionID{cfg.ActionPortalA, cfg.ActionPortalB}, want: portal.SlotA},
		{name: "held from last frame", held: []cfg.ActionID{cfg.ActionPortalA}, prev: []cfg.ActionID{cfg.ActionPortalA}, wantNil: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			press(input, tt.held...)
			for _, id := range tt.prev {
				input.Previous[id] = true
			}
			req := shotRequest(input, cam, center)
			if tt.wantNil {
				if req != nil {
					t.Fatalf("got request %+v, want none", req)
				}
				return
			}
			if req == nil || req.Slot != tt.want {
				t.Fatalf("got %+v, want slot %s", req, tt.want)
			}
		})
	}
}

func TestShotTarget(t *testing.T) {
	cam := math.Vec2{X: 500, Y: 200}
	center := math.Vec2{X: 480, Y: 210}

	t.Run("cursor", func(t *testing.T) {
		input := &components.InputData{CursorX: cfg.C.Width / 2, CursorY: cfg.C.Height/2 + 10}
		got := shotTarget(input, cam, center)
		if got.X != 500 || got.Y != 210 {
			t.Fatalf("target %+v, want (500, 210)", got)
		}
	})

	t.Run("stick", func(t *testing.T) {
		input := &components.InputData{LastInputMethod: components.InputXbox, StickX: 1}
		got := shotTarget(input, cam, center)
		if got.X != center.X+cfg.Input.StickAimDistance || got.Y != center.Y {
			t.Fatalf("target %+v", got)
		}
	})

	t.Run("stick ignored on keyboard", func(t *testing.T) {
		input := &components.InputData{StickX: 1, CursorX: 0, CursorY: 0}
		got := shotTarget(input, cam, center)
		want := ScreenToWorld(0, 0, cam)
		if got != want {
			t.Fatalf("target %+v, want %+v", got, want)
		}
	})
}

func TestScreenWorldRoundTrip(t *testing.T) {
	cam := math.Vec2{X: 123.5, Y: -40}
	p := ScreenToWorld(17, 300, cam)
	x, y := WorldToScreen(p, cam)
	if x != 17 || y != 300 {
		t.Fatalf("round trip gave (%v, %v)", x, y)
	}
}
