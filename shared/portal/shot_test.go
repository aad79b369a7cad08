package portal

import (
	"testing"

	"github.com/automoto/portalfling/shared/tilemap"
)

func newLauncher(grid *tilemap.Grid, minSep float64) (*Launcher, *Pair) {
	pair := NewPair(DefaultPairConfig)
	v := &Validator{Grid: grid, MinSeparation: minSep}
	return NewLauncher(ShotConfig{Speed: 16, MaxDistance: MaxCastDistance}, v, pair), pair
}

// advanceUntil steps the launcher until it reports outcomes or gives up.
func advanceUntil(t *testing.T, l *Launcher, limit int) ([]Outcome, int) {
	t.Helper()
	for tick := 1; tick <= limit; tick++ {
		if out := l.Advance(); len(out) > 0 {
			return out, tick
		}
	}
	t.Fatalf("no outcome within %d ticks", limit)
	return nil, 0
}

func TestShotResolvesAfterTravel(t *testing.T) {
	l, pair := newLauncher(ring(12, 10, ts), 0)

	s := l.Fire(SlotA, vec(50, 60), vec(50, 200))
	if s == nil || !s.HasHit || s.Rejection != RejectNone {
		t.Fatalf("fire = %+v", s)
	}

	out, tick := advanceUntil(t, l, 100)
	// 84px at 16px per tick.
	if tick != 6 {
		t.Fatalf("resolved on tick %d, want 6", tick)
	}
	o := out[0]
	if !o.Placed() || !o.HitValidSurface || o.Slot != SlotA || o.TileID != tilemap.Solid {
		t.Fatalf("outcome %+v", o)
	}
	approxEqual(t, o.ImpactPoint.Y, 144, 1e-9, "impact.y")

	p, ok := pair.Get(SlotA)
	if !ok || p.Orientation != Up || p.Pos.X != 48 {
		t.Fatalf("portal A = %+v ok=%v", p, ok)
	}
	if len(l.Shots()) != 0 {
		t.Fatalf("resolved shot still in flight")
	}
}

func TestShotHeadFollowsTravel(t *testing.T) {
	l, _ := newLauncher(ring(12, 10, ts), 0)
	l.Fire(SlotA, vec(50, 60), vec(50, 200))

	l.Advance()
	l.Advance()
	shots := l.Shots()
	if len(shots) != 1 {
		t.Fatalf("shots in flight = %d", len(shots))
	}
	approxEqual(t, shots[0].Head.Y, 60+32, 1e-4, "head.y")
}

func TestShotOnBannedSurface(t *testing.T) {
	grid := ring(12, 10, ts)
	grid.Map.Tiles[9*12+3] = tilemap.Grey
	l, pair := newLauncher(grid, 0)

	l.Fire(SlotB, vec(50, 60), vec(50, 200))
	out, _ := advanceUntil(t, l, 100)

	o := out[0]
	if !o.Hit || o.HitValidSurface || !o.Banned || o.Placed() {
		t.Fatalf("outcome %+v", o)
	}
	if len(pair.Portals()) != 0 {
		t.Fatalf("banned shot placed a portal")
	}
}

func TestShotMiss(t *testing.T) {
	tiles := make([]int, 12*10)
	grid := tilemap.NewGrid(tilemap.TileMap{Width: 12, Height: 10, Tiles: tiles}, ts, 160)
	pair := NewPair(DefaultPairConfig)
	l := NewLauncher(ShotConfig{Speed: 50, MaxDistance: 100}, &Validator{Grid: grid}, pair)

	l.Fire(SlotA, vec(50, 60), vec(50, 0))
	out, tick := advanceUntil(t, l, 10)
	if tick != 2 {
		t.Fatalf("miss resolved on tick %d, want 2", tick)
	}
	if out[0].Hit || out[0].Placed() {
		t.Fatalf("outcome %+v", out[0])
	}
}

func TestShotTooCloseToOtherPortal(t *testing.T) {
	l, pair := newLauncher(ring(16, 10, ts), 3*ts)
	pair.Place(Candidate{AnchorX: 4, AnchorY: 7, Orientation: Up, Pos: vec(80, 144)}.Portal(SlotB))

	s := l.Fire(SlotA, vec(50, 60), vec(50, 200))
	if s.Rejection != RejectTooClose {
		t.Fatalf("fire-time verdict = %v", s.Rejection)
	}
	out, _ := advanceUntil(t, l, 100)
	if !out[0].TooClose || out[0].Banned || out[0].Placed() {
		t.Fatalf("outcome %+v", out[0])
	}
	if _, ok := pair.Get(SlotA); ok {
		t.Fatalf("too-close shot placed a portal")
	}
}

func TestShotRecheckedOnArrival(t *testing.T) {
	l, pair := newLauncher(ring(16, 10, ts), 3*ts)
	l.Fire(SlotA, vec(50, 60), vec(50, 200))

	// The other portal lands next to the impact point while A is in flight.
	pair.Place(Candidate{AnchorX: 4, AnchorY: 7, Orientation: Up, Pos: vec(80, 144)}.Portal(SlotB))

	out, _ := advanceUntil(t, l, 100)
	if !out[0].TooClose {
		t.Fatalf("outcome %+v, want too close", out[0])
	}
}

func TestFireReplacesShotInFlight(t *testing.T) {
	l, _ := newLauncher(ring(12, 10, ts), 0)
	l.Fire(SlotA, vec(50, 60), vec(50, 200))
	l.Fire(SlotA, vec(50, 60), vec(0, 60))
	l.Fire(SlotB, vec(50, 60), vec(200, 60))

	if n := len(l.Shots()); n != 2 {
		t.Fatalf("shots in flight = %d, want 2", n)
	}
	if l.Fire(SlotA, vec(50, 60), vec(50, 60)) != nil {
		t.Fatalf("zero-length shot fired")
	}

	l.Clear()
	if len(l.Shots()) != 0 || len(l.Advance()) != 0 {
		t.Fatalf("clear left shots behind")
	}
}
