package physics

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle. For a hit box, X and Y are offsets from
// the body's top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Body is the mutable physical state of one character.
type Body struct {
	Pos   dmath.Vec2 // top-left of the visual box, world px
	Vel   dmath.Vec2
	Accel dmath.Vec2 // applied every tick on top of gravity

	W, H   float64
	HitBox *Rect // nil means the hit box is the full W x H box

	Grounded bool
	// WallSide is -1 or 1 when a wall touches the hit box on that side.
	WallSide int
	// Blocked is the velocity the last Step cancelled on collision. Portals
	// use it to carry momentum the wall would otherwise have absorbed.
	Blocked dmath.Vec2

	// Gravity overrides the integrator's default when non-nil. Zero suspends
	// vertical motion entirely (clinging).
	Gravity *float64
}

// NewBody creates a body at (x, y) with the given visual size.
func NewBody(x, y, w, h float64) *Body {
	return &Body{
		Pos: dmath.Vec2{X: x, Y: y},
		W:   w,
		H:   h,
	}
}

// Bounds returns the hit box in world coordinates.
func (b *Body) Bounds() Rect {
	if b.HitBox == nil {
		return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
	}
	return Rect{
		X: b.Pos.X + b.HitBox.X,
		Y: b.Pos.Y + b.HitBox.Y,
		W: b.HitBox.W,
		H: b.HitBox.H,
	}
}

// Center returns the center of the hit box.
func (b *Body) Center() dmath.Vec2 {
	r := b.Bounds()
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SetCenter moves the body so its hit box is centered on c.
func (b *Body) SetCenter(c dmath.Vec2) {
	r := b.Bounds()
	b.Pos.X += c.X - (r.X + r.W/2)
	b.Pos.Y += c.Y - (r.Y + r.H/2)
}

// SuspendGravity pins the body vertically until RestoreGravity is called.
func (b *Body) SuspendGravity() {
	zero := 0.0
	b.Gravity = &zero
}

// RestoreGravity returns the body to the integrator's default gravity.
func (b *Body) RestoreGravity() {
	b.Gravity = nil
}

// GravitySuspended reports whether an explicit zero override is active.
func (b *Body) GravitySuspended() bool {
	return b.Gravity != nil && *b.Gravity == 0
}

// Stop zeroes velocity and acceleration.
func (b *Body) Stop() {
	b.Vel = dmath.Vec2{}
	b.Accel = dmath.Vec2{}
}
