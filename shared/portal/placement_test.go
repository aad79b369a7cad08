package portal

import (
	"testing"

	"github.com/automoto/portalfling/shared/tilemap"
)

const ts = 16.0

func TestAnchorFromFloorHit(t *testing.T) {
	grid := ring(12, 10, ts)
	hit, ok := Cast(grid, vec(50, 60), vec(0, 1), MaxCastDistance)
	if !ok {
		t.Fatalf("expected floor hit")
	}

	c := Anchor(grid, hit)
	if c.Orientation != Up || c.AnchorX != 2 || c.AnchorY != 7 {
		t.Fatalf("candidate %+v, want Up at (2,7)", c)
	}
	approxEqual(t, c.Pos.X, 48, 1e-9, "pos.x")
	approxEqual(t, c.Pos.Y, 144, 1e-9, "pos.y")

	v := Validator{Grid: grid}
	if !v.Validate(c) {
		t.Fatalf("floor candidate rejected")
	}
}

func TestAnchorFromWallHit(t *testing.T) {
	grid := ring(12, 10, ts)
	hit, ok := Cast(grid, vec(60, 70), vec(-1, 0), MaxCastDistance)
	if !ok {
		t.Fatalf("expected wall hit")
	}

	c := Anchor(grid, hit)
	if c.Orientation != Right || c.AnchorX != 1 || c.AnchorY != 3 {
		t.Fatalf("candidate %+v, want Right at (1,3)", c)
	}
	approxEqual(t, c.Pos.X, 16, 1e-9, "pos.x")
	approxEqual(t, c.Pos.Y, 64, 1e-9, "pos.y")

	v := Validator{Grid: grid}
	if !v.Validate(c) {
		t.Fatalf("wall candidate rejected")
	}
}

func TestAnchorCeilingAndRightWall(t *testing.T) {
	grid := ring(12, 10, ts)
	v := Validator{Grid: grid}

	for _, tt := range []struct {
		dir  [2]float64
		want Orientation
	}{
		{[2]float64{0, -1}, Down},
		{[2]float64{1, 0}, Left},
	} {
		hit, ok := Cast(grid, vec(90, 70), vec(tt.dir[0], tt.dir[1]), MaxCastDistance)
		if !ok {
			t.Fatalf("%v: expected a hit", tt.want)
		}
		c := Anchor(grid, hit)
		if c.Orientation != tt.want {
			t.Fatalf("orientation = %v, want %v", c.Orientation, tt.want)
		}
		if !v.Validate(c) {
			t.Fatalf("%v candidate %+v rejected", tt.want, c)
		}
	}
}

func TestValidateGating(t *testing.T) {
	grid := ring(12, 10, ts)
	grid.Map.Tiles[9*12+5] = tilemap.Grey
	grid.Map.Tiles[9*12+6] = tilemap.Grey
	v := Validator{Grid: grid}

	tests := []struct {
		name string
		c    Candidate
		want bool
	}{
		{"floor with support", Candidate{AnchorX: 2, AnchorY: 7, Orientation: Up}, true},
		{"footprint inside the floor", Candidate{AnchorX: 2, AnchorY: 8, Orientation: Up}, false},
		{"footprint out of bounds", Candidate{AnchorX: -1, AnchorY: 3, Orientation: Right}, false},
		{"floating, no support", Candidate{AnchorX: 2, AnchorY: 5, Orientation: Up}, false},
		{"support on grey", Candidate{AnchorX: 5, AnchorY: 7, Orientation: Up}, false},
		{"half grey support", Candidate{AnchorX: 6, AnchorY: 7, Orientation: Up}, false},
		{"half grey support other side", Candidate{AnchorX: 4, AnchorY: 7, Orientation: Up}, false},
		{"left wall facing right", Candidate{AnchorX: 1, AnchorY: 3, Orientation: Right}, true},
		{"left wall facing the wrong way", Candidate{AnchorX: 1, AnchorY: 3, Orientation: Left}, false},
		{"right wall", Candidate{AnchorX: 9, AnchorY: 3, Orientation: Left}, true},
		{"ceiling", Candidate{AnchorX: 3, AnchorY: 1, Orientation: Down}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Validate(tt.c); got != tt.want {
				t.Fatalf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsAnyNonEmptyFootprint(t *testing.T) {
	for _, id := range []int{tilemap.Solid, tilemap.Grey, tilemap.Finish, tilemap.Spike, 17} {
		for cell := 0; cell < 4; cell++ {
			grid := ring(12, 10, ts)
			tx, ty := 2+cell%2, 7+cell/2
			grid.Map.Tiles[ty*12+tx] = id
			v := Validator{Grid: grid}

			if v.Validate(Candidate{AnchorX: 2, AnchorY: 7, Orientation: Up}) {
				t.Fatalf("id %d at (%d,%d) accepted", id, tx, ty)
			}
		}
	}
}

func TestCheckMinSeparation(t *testing.T) {
	grid := ring(16, 10, ts)
	v := Validator{Grid: grid, MinSeparation: 3 * ts}
	other := Candidate{AnchorX: 2, AnchorY: 7, Orientation: Up, Pos: vec(48, 144)}.Portal(SlotB)

	tests := []struct {
		name    string
		anchorX int
		want    Rejection
	}{
		{"one tile apart", 3, RejectTooClose},
		{"two tiles apart", 4, RejectTooClose},
		{"exactly the minimum", 5, RejectNone},
		{"four tiles apart", 6, RejectNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{
				AnchorX:     tt.anchorX,
				AnchorY:     7,
				Orientation: Up,
				Pos:         vec(float64(tt.anchorX+1)*ts, 144),
			}
			if got := v.Check(c, &other); got != tt.want {
				t.Fatalf("Check = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWithoutSeparationRule(t *testing.T) {
	grid := ring(16, 10, ts)
	v := Validator{Grid: grid}
	other := Candidate{AnchorX: 2, AnchorY: 7, Orientation: Up, Pos: vec(48, 144)}.Portal(SlotB)

	near := Candidate{AnchorX: 4, AnchorY: 7, Orientation: Up, Pos: vec(80, 144)}
	if got := v.Check(near, &other); got != RejectNone {
		t.Fatalf("adjacent footprints = %v, want ok", got)
	}
	overlap := Candidate{AnchorX: 3, AnchorY: 7, Orientation: Up, Pos: vec(64, 144)}
	if got := v.Check(overlap, &other); got != RejectBanned {
		t.Fatalf("overlapping footprints = %v, want banned", got)
	}
	if got := v.Check(overlap, nil); got != RejectNone {
		t.Fatalf("no other portal = %v, want ok", got)
	}
}

func TestClassifyBannedTile(t *testing.T) {
	grid := ring(12, 10, ts)
	grid.Map.Tiles[9*12+3] = tilemap.Grey
	v := Validator{Grid: grid}

	hit, ok := Cast(grid, vec(50, 60), vec(0, 1), MaxCastDistance)
	if !ok || hit.TileID != tilemap.Grey {
		t.Fatalf("expected a grey hit, got %+v ok=%v", hit, ok)
	}
	if _, rej := v.Classify(hit, nil); rej != RejectBanned {
		t.Fatalf("Classify = %v, want banned", rej)
	}
}
