package portal

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/tilemap"
)

// ring returns a w x h map whose border tiles are solid, anchored to a
// canvas exactly as tall as the map.
func ring(w, h int, ts float64) *tilemap.Grid {
	tiles := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				tiles[y*w+x] = tilemap.Solid
			}
		}
	}
	return tilemap.NewGrid(tilemap.TileMap{Width: w, Height: h, Tiles: tiles}, ts, float64(h)*ts)
}

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestCastStraightDownHitsTopEdge(t *testing.T) {
	tiles := make([]int, 10*5)
	tiles[4*10+2] = tilemap.Solid
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 10, Height: 5, Tiles: tiles}, 10, 100)

	hit, ok := Cast(grid, vec(20, 60), vec(0, 1), MaxCastDistance)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.TileX != 2 || hit.TileY != 4 {
		t.Fatalf("hit tile (%d,%d), want (2,4)", hit.TileX, hit.TileY)
	}
	_, top := grid.TileToWorld(2, 4)
	approxEqual(t, hit.Point.X, 20, 1e-9, "hit.x")
	approxEqual(t, hit.Point.Y, top, 1e-9, "hit.y")
	approxEqual(t, hit.Dist, 30, 1e-9, "dist")
	if hit.Axis != AxisY || hit.Orientation() != Up {
		t.Fatalf("axis=%v orientation=%v, want Y/U", hit.Axis, hit.Orientation())
	}
	if hit.TileID != tilemap.Solid {
		t.Fatalf("tile id = %d", hit.TileID)
	}
}

func TestCastFromAboveTheMap(t *testing.T) {
	tiles := make([]int, 10*5)
	tiles[4*10+2] = tilemap.Solid
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 10, Height: 5, Tiles: tiles}, 10, 100)

	hit, ok := Cast(grid, vec(25, 10), vec(0, 3), MaxCastDistance)
	if !ok {
		t.Fatalf("ray entering the map from above should hit")
	}
	approxEqual(t, hit.Point.Y, 90, 1e-9, "hit.y")
	approxEqual(t, hit.Dist, 80, 1e-9, "dist")
}

func TestCastMisses(t *testing.T) {
	tiles := make([]int, 10*5)
	tiles[4*10+2] = tilemap.Solid
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 10, Height: 5, Tiles: tiles}, 10, 100)

	tests := []struct {
		name    string
		origin  dmath.Vec2
		dir     dmath.Vec2
		maxDist float64
	}{
		{"zero direction", vec(20, 60), vec(0, 0), MaxCastDistance},
		{"right along an empty row", vec(20, 60), vec(1, 0), MaxCastDistance},
		{"left along an empty row", vec(20, 60), vec(-1, 0), MaxCastDistance},
		{"up out of the map", vec(20, 60), vec(0, -1), MaxCastDistance},
		{"target beyond max distance", vec(20, 60), vec(0, 1), 20},
		{"outside and moving away", vec(-50, 60), vec(-1, 0.2), MaxCastDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := Cast(grid, tt.origin, tt.dir, tt.maxDist); ok {
				t.Fatalf("unexpected hit %+v", hit)
			}
		})
	}
}

func TestCastOrientation(t *testing.T) {
	grid := ring(10, 10, 10)
	origin := vec(55, 55)

	tests := []struct {
		dir       dmath.Vec2
		want      Orientation
		tx, ty    int
		px, py    float64
		wantStepX int
		wantStepY int
		wantAxis  Axis
	}{
		{vec(1, 0), Left, 9, 5, 90, 55, 1, 0, AxisX},
		{vec(-1, 0), Right, 0, 5, 10, 55, -1, 0, AxisX},
		{vec(0, -1), Down, 5, 0, 55, 10, 0, -1, AxisY},
		{vec(0, 1), Up, 5, 9, 55, 90, 0, 1, AxisY},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			hit, ok := Cast(grid, origin, tt.dir, MaxCastDistance)
			if !ok {
				t.Fatalf("expected a hit")
			}
			if got := hit.Orientation(); got != tt.want {
				t.Fatalf("orientation = %v, want %v", got, tt.want)
			}
			if hit.TileX != tt.tx || hit.TileY != tt.ty {
				t.Fatalf("tile (%d,%d), want (%d,%d)", hit.TileX, hit.TileY, tt.tx, tt.ty)
			}
			if hit.StepX != tt.wantStepX || hit.StepY != tt.wantStepY || hit.Axis != tt.wantAxis {
				t.Fatalf("step (%d,%d) axis %v", hit.StepX, hit.StepY, hit.Axis)
			}
			approxEqual(t, hit.Point.X, tt.px, 1e-9, "hit.x")
			approxEqual(t, hit.Point.Y, tt.py, 1e-9, "hit.y")
		})
	}
}

func TestCastAlwaysTerminates(t *testing.T) {
	tiles := make([]int, 20*12)
	for i := range tiles {
		if i%7 == 0 {
			tiles[i] = tilemap.Solid
		}
	}
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 20, Height: 12, Tiles: tiles}, 16, 240)
	w, h := grid.WorldSize()

	origins := []dmath.Vec2{
		vec(40, 60), vec(0, 0), vec(w, h), vec(-100, 100), vec(w+30, -40), vec(160, 120),
	}
	for _, o := range origins {
		for i := 0; i < 64; i++ {
			a := float64(i) * 2 * math.Pi / 64
			dir := vec(math.Cos(a), math.Sin(a))
			hit, ok := Cast(grid, o, dir, MaxCastDistance)
			if !ok {
				continue
			}
			if !grid.InBounds(hit.TileX, hit.TileY) {
				t.Fatalf("origin %v angle %d: hit outside map at (%d,%d)", o, i, hit.TileX, hit.TileY)
			}
			if !grid.IsSolid(hit.TileID) {
				t.Fatalf("origin %v angle %d: hit non-solid id %d", o, i, hit.TileID)
			}
			if hit.Dist > MaxCastDistance {
				t.Fatalf("origin %v angle %d: dist %v beyond budget", o, i, hit.Dist)
			}
		}
	}
}
