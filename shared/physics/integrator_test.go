package physics

import (
	"math"
	"testing"

	"github.com/automoto/portalfling/shared/tilemap"
)

// box builds a w x h room: solid floor row, solid right wall column,
// everything else empty. The canvas height equals the map height so world Y
// equals map Y.
func box(w, h int) *tilemap.Grid {
	tiles := make([]int, w*h)
	for x := 0; x < w; x++ {
		tiles[(h-1)*w+x] = tilemap.Solid
	}
	for y := 0; y < h; y++ {
		tiles[y*w+w-1] = tilemap.Solid
	}
	return tilemap.NewGrid(tilemap.TileMap{Width: w, Height: h, Tiles: tiles}, 16, float64(h*16))
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestStepFreeFall(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	b := NewBody(32, 16, 12, 14)

	in.Step(b)

	approxEqual(t, b.Vel.Y, 0.14, 1e-9, "vel.y")
	approxEqual(t, b.Pos.Y, 16.14, 1e-9, "pos.y")
	if b.Grounded {
		t.Fatalf("grounded after a free-fall tick")
	}
}

func TestStepLandsAndGrounds(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	floorY := 9 * 16.0
	b := NewBody(32, floorY-14-0.5, 12, 14)
	b.Vel.Y = 3

	in.Step(b)

	if !b.Grounded {
		t.Fatalf("expected grounded after downward collision")
	}
	if b.Vel.Y != 0 {
		t.Fatalf("vel.y = %v, want 0", b.Vel.Y)
	}
	approxEqual(t, b.Pos.Y, floorY-14-0.5, 1e-9, "pos.y (displacement undone)")
	approxEqual(t, b.Blocked.Y, 3.14, 1e-9, "blocked.y")

	in.Step(b)
	approxEqual(t, b.Blocked.Y, 0, 0, "blocked.y after a free step")
}

func TestStepCeilingDoesNotGround(t *testing.T) {
	tiles := make([]int, 5*5)
	for x := 0; x < 5; x++ {
		tiles[x] = tilemap.Solid
	}
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 5, Height: 5, Tiles: tiles}, 16, 80)
	in := NewIntegrator(grid, DefaultConfig)
	b := NewBody(20, 17, 12, 14)
	b.Vel.Y = -4

	in.Step(b)

	if b.Grounded {
		t.Fatalf("ceiling hit must not set grounded")
	}
	if b.Vel.Y != 0 {
		t.Fatalf("vel.y = %v, want 0 after ceiling hit", b.Vel.Y)
	}
}

func TestStepAxisIndependence(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	wallX := 9 * 16.0
	b := NewBody(wallX-12-1, 32, 12, 14)
	b.Vel.X = 5
	b.Vel.Y = -2

	in.Step(b)

	if b.Vel.X != 0 {
		t.Fatalf("vel.x = %v, want 0 (blocked by wall)", b.Vel.X)
	}
	approxEqual(t, b.Pos.X, wallX-12-1, 1e-9, "pos.x")
	approxEqual(t, b.Vel.Y, -2+0.14, 1e-9, "vel.y preserved")
	approxEqual(t, b.Pos.Y, 32-2+0.14, 1e-9, "pos.y")
	if b.WallSide != 1 {
		t.Fatalf("WallSide = %d, want 1", b.WallSide)
	}
}

func TestStepSuspendedGravity(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	b := NewBody(32, 32, 12, 14)
	b.Vel.Y = 3
	b.SuspendGravity()

	in.Step(b)

	approxEqual(t, b.Pos.Y, 32, 0, "pos.y")
	approxEqual(t, b.Vel.Y, 3, 0, "vel.y untouched while suspended")
	if !b.GravitySuspended() {
		t.Fatalf("override cleared by Step")
	}

	b.RestoreGravity()
	in.Step(b)
	approxEqual(t, b.Pos.Y, 32+3.14, 1e-9, "pos.y after restore")
}

func TestStepGravityOverride(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	b := NewBody(32, 32, 12, 14)
	g := 0.5
	b.Gravity = &g

	in.Step(b)

	approxEqual(t, b.Vel.Y, 0.5, 1e-9, "vel.y")
}

func TestStepHitBoxOffset(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	wallX := 9 * 16.0
	// The visual box already overlaps the wall; only the narrower hit box counts.
	b := NewBody(wallX-16, 32, 20, 14)
	b.HitBox = &Rect{X: 2, Y: 0, W: 12, H: 14}
	b.Vel.X = 1

	in.Step(b)

	approxEqual(t, b.Pos.X, wallX-16+1, 1e-9, "pos.x")
	r := b.Bounds()
	if r.X+r.W > wallX {
		t.Fatalf("hit box right edge %v past wall %v", r.X+r.W, wallX)
	}
}

func TestStepNeverOverlapsSolid(t *testing.T) {
	in := NewIntegrator(box(12, 12), DefaultConfig)
	grid := in.Grid()

	velocities := []struct{ vx, vy float64 }{
		{3, 0}, {-3, 0}, {0, 8}, {0, -8}, {7, 7}, {-7, 5}, {9.5, -9.5}, {0.3, 0.1},
	}
	for _, v := range velocities {
		b := NewBody(60, 60, 12, 14)
		b.Vel.X, b.Vel.Y = v.vx, v.vy
		for tick := 0; tick < 300; tick++ {
			if tick%40 == 0 {
				b.Vel.X += v.vx
				b.Vel.Y += v.vy
			}
			in.Step(b)
			r := b.Bounds()
			if grid.RectOverlapsSolid(r.X, r.Y, r.W, r.H) {
				t.Fatalf("v=%v tick %d: body %+v overlaps a solid tile", v, tick, r)
			}
		}
	}
}

func TestWallContactAndGroundWithin(t *testing.T) {
	in := NewIntegrator(box(10, 10), DefaultConfig)
	wallX := 9 * 16.0
	floorY := 9 * 16.0

	b := NewBody(wallX-12, 32, 12, 14)
	if side := in.WallContact(b); side != 1 {
		t.Fatalf("WallContact = %d, want 1", side)
	}
	b.Pos.X = 40
	if side := in.WallContact(b); side != 0 {
		t.Fatalf("WallContact = %d, want 0 in open space", side)
	}

	b.Pos.Y = floorY - 14 - 3
	if !in.GroundWithin(b, 4) {
		t.Fatalf("floor 3px below should be within 4px")
	}
	if in.GroundWithin(b, 2) {
		t.Fatalf("floor 3px below should not be within 2px")
	}
}
