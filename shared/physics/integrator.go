// Package physics integrates a single body against a tile grid. Collision is
// axis separated: X is moved and resolved first, then Y. A fast diagonal
// body can clip past a corner that a swept test would catch; that is an
// accepted approximation.
package physics

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/tilemap"
)

// Config holds integrator constants.
type Config struct {
	Gravity      float64 // px/tick²
	MaxFallSpeed float64 // 0 disables the clamp
}

// DefaultConfig matches the tuning in config.Physics.
var DefaultConfig = Config{
	Gravity:      0.14,
	MaxFallSpeed: 10,
}

// Integrator advances bodies one fixed tick at a time.
type Integrator struct {
	grid *tilemap.Grid
	cfg  Config
}

func NewIntegrator(grid *tilemap.Grid, cfg Config) *Integrator {
	return &Integrator{grid: grid, cfg: cfg}
}

// Grid returns the collision grid.
func (in *Integrator) Grid() *tilemap.Grid {
	return in.grid
}

// Step applies gravity and acceleration, then moves the body one axis at a
// time. A blocked axis has its displacement undone and its velocity zeroed,
// so the body never ends a step overlapping a solid tile.
func (in *Integrator) Step(b *Body) {
	gravity := in.cfg.Gravity
	if b.Gravity != nil {
		gravity = *b.Gravity
	}
	suspended := b.Gravity != nil && gravity == 0

	b.Vel.X += b.Accel.X
	if !suspended {
		b.Vel.Y += gravity + b.Accel.Y
		if in.cfg.MaxFallSpeed > 0 && b.Vel.Y > in.cfg.MaxFallSpeed {
			b.Vel.Y = in.cfg.MaxFallSpeed
		}
	}

	b.WallSide = 0
	b.Blocked = dmath.Vec2{}
	if b.Vel.X != 0 {
		prevX := b.Pos.X
		b.Pos.X += b.Vel.X
		if in.overlaps(b) {
			b.Pos.X = prevX
			if b.Vel.X > 0 {
				b.WallSide = 1
			} else {
				b.WallSide = -1
			}
			b.Blocked.X = b.Vel.X
			b.Vel.X = 0
		}
	}

	if suspended {
		b.Grounded = false
	} else {
		prevY := b.Pos.Y
		b.Pos.Y += b.Vel.Y
		if in.overlaps(b) {
			b.Pos.Y = prevY
			b.Grounded = b.Vel.Y > 0
			b.Blocked.Y = b.Vel.Y
			b.Vel.Y = 0
		} else {
			b.Grounded = false
		}
	}

	if b.WallSide == 0 {
		b.WallSide = in.WallContact(b)
	}
}

// WallContact probes one pixel to either side of the hit box and returns the
// side a solid tile is on, preferring the right. It returns 0 when neither
// side touches.
func (in *Integrator) WallContact(b *Body) int {
	r := b.Bounds()
	switch {
	case in.grid.RectOverlapsSolid(r.X+1, r.Y, r.W, r.H):
		return 1
	case in.grid.RectOverlapsSolid(r.X-1, r.Y, r.W, r.H):
		return -1
	}
	return 0
}

// Overlaps reports whether the body's hit box currently touches a solid tile.
func (in *Integrator) Overlaps(b *Body) bool {
	return in.overlaps(b)
}

func (in *Integrator) overlaps(b *Body) bool {
	r := b.Bounds()
	return in.grid.RectOverlapsSolid(r.X, r.Y, r.W, r.H)
}

// GroundWithin reports whether a solid tile lies within dist pixels below the
// hit box. Step undoes a blocked move completely, so a landed body can hover
// a few pixels above the floor until gravity closes the gap.
func (in *Integrator) GroundWithin(b *Body, dist float64) bool {
	r := b.Bounds()
	return in.grid.RectOverlapsSolid(r.X, r.Y+dist, r.W, r.H)
}

// SnapToWall slides the body toward side until its hit box is flush with a
// solid tile, searching at most maxDist pixels. It reports whether a wall was
// found; the body is left untouched otherwise.
func (in *Integrator) SnapToWall(b *Body, side int, maxDist float64) bool {
	if side == 0 {
		return false
	}
	r := b.Bounds()
	ts := in.grid.TileSize
	for i := 0; ; i++ {
		var shift float64
		if side > 0 {
			edge := r.X + r.W
			shift = math.Ceil(edge/ts)*ts + float64(i)*ts - edge
		} else {
			shift = math.Floor(r.X/ts)*ts - float64(i)*ts - r.X
		}
		if math.Abs(shift) > maxDist {
			return false
		}
		x := r.X + shift
		if in.grid.RectOverlapsSolid(x, r.Y, r.W, r.H) {
			return false
		}
		if in.grid.RectOverlapsSolid(x+float64(side)*0.5, r.Y, r.W, r.H) {
			b.Pos.X += shift
			return true
		}
	}
}
