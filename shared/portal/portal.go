// Package portal finds portal surfaces in a tile grid, validates placements,
// owns the two linked portal slots and moves bodies between them.
package portal

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Orientation is the outward normal of the wall a portal is mounted on.
type Orientation int

const (
	Right Orientation = iota
	Left
	Up
	Down
)

func (o Orientation) String() string {
	switch o {
	case Right:
		return "R"
	case Left:
		return "L"
	case Up:
		return "U"
	case Down:
		return "D"
	}
	return "?"
}

// Normal returns the outward unit normal in screen space (Y down).
func (o Orientation) Normal() dmath.Vec2 {
	switch o {
	case Right:
		return dmath.Vec2{X: 1}
	case Left:
		return dmath.Vec2{X: -1}
	case Up:
		return dmath.Vec2{Y: -1}
	default:
		return dmath.Vec2{Y: 1}
	}
}

// Tangent returns the unit vector along the wall. Decomposing into and
// composing out of the (normal, tangent) frame both use this table.
func (o Orientation) Tangent() dmath.Vec2 {
	switch o {
	case Right, Left:
		return dmath.Vec2{Y: 1}
	default:
		return dmath.Vec2{X: 1}
	}
}

// Angle is the rotation used to draw the portal. It plays no part in physics.
func (o Orientation) Angle() float64 {
	switch o {
	case Left:
		return math.Pi
	case Up:
		return -math.Pi / 2
	case Down:
		return math.Pi / 2
	}
	return 0
}

// Horizontal reports whether the normal lies on the X axis.
func (o Orientation) Horizontal() bool {
	return o == Right || o == Left
}

// Slot names one end of the pair.
type Slot int

const (
	NoSlot Slot = iota - 1
	SlotA
	SlotB
)

func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	}
	return "-"
}

// Other returns the opposite end of the pair.
func (s Slot) Other() Slot {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

func (s Slot) valid() bool {
	return s == SlotA || s == SlotB
}

// Portal is a placed endpoint. Pos is the center of the opening on the wall
// surface; AnchorX and AnchorY are the top-left tile of its 2x2 footprint.
type Portal struct {
	Slot        Slot
	Pos         dmath.Vec2
	Orientation Orientation
	AnchorX     int
	AnchorY     int
}

// Angle is the presentation rotation of the portal.
func (p Portal) Angle() float64 {
	return p.Orientation.Angle()
}

func dot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

func add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}
