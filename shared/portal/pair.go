package portal

import (
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/physics"
	"github.com/automoto/portalfling/shared/tilemap"
)

// PairConfig holds the trigger and teleport tuning.
type PairConfig struct {
	// Trigger ellipse radii around the portal center. The normal radius is
	// narrower so the trigger behaves like a doorway.
	TriggerNormal  float64
	TriggerTangent float64
	// ExitPad is added to the body's half extent when placing it in front of
	// the exit portal.
	ExitPad float64
	// Cooldown is the number of ticks the exit portal stays locked.
	Cooldown int
}

// DefaultPairConfig matches the tuning in config.Portal.
var DefaultPairConfig = PairConfig{
	TriggerNormal:  10,
	TriggerTangent: 18,
	ExitPad:        2,
	Cooldown:       8,
}

// Teleport reports a completed crossing.
type Teleport struct {
	From, To  Slot
	Direction Orientation // exit orientation
	Vel       dmath.Vec2  // exit velocity
}

// Pair owns portal slots A and B.
type Pair struct {
	cfg      PairConfig
	slots    [2]*Portal
	lastUsed Slot
	cooldown int
}

func NewPair(cfg PairConfig) *Pair {
	return &Pair{cfg: cfg, lastUsed: NoSlot}
}

// Place replaces whatever occupied p.Slot. A portal without a valid slot is
// ignored.
func (pr *Pair) Place(p Portal) {
	if !p.Slot.valid() {
		return
	}
	cp := p
	pr.slots[p.Slot] = &cp
	if pr.lastUsed == p.Slot {
		pr.lastUsed = NoSlot
	}
}

// Clear empties one slot.
func (pr *Pair) Clear(s Slot) {
	if !s.valid() {
		return
	}
	pr.slots[s] = nil
	if pr.lastUsed == s {
		pr.lastUsed = NoSlot
	}
}

// Reset empties both slots and drops the re-entry guard.
func (pr *Pair) Reset() {
	pr.slots = [2]*Portal{}
	pr.lastUsed = NoSlot
	pr.cooldown = 0
}

// Get returns the portal in slot s.
func (pr *Pair) Get(s Slot) (Portal, bool) {
	if !s.valid() {
		return Portal{}, false
	}
	if p := pr.slots[s]; p != nil {
		return *p, true
	}
	return Portal{}, false
}

// Portals returns the placed portals in slot order.
func (pr *Pair) Portals() []Portal {
	out := make([]Portal, 0, 2)
	for _, p := range pr.slots {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Linked reports whether both slots are occupied.
func (pr *Pair) Linked() bool {
	return pr.slots[SlotA] != nil && pr.slots[SlotB] != nil
}

// LastUsed returns the slot locked against re-entry, or NoSlot.
func (pr *Pair) LastUsed() Slot {
	return pr.lastUsed
}

// SetLastUsed locks a slot against re-entry until the body leaves it.
func (pr *Pair) SetLastUsed(s Slot) {
	pr.lastUsed = s
}

// Overlapping returns the first slot whose trigger contains point.
func (pr *Pair) Overlapping(point dmath.Vec2) (Slot, bool) {
	for s, p := range pr.slots {
		if p != nil && pr.inTrigger(p, point) {
			return Slot(s), true
		}
	}
	return NoSlot, false
}

// OverlapsFootprint reports whether r intersects the 2x2 tile footprint of
// any placed portal. Touching edges do not count.
func (pr *Pair) OverlapsFootprint(grid *tilemap.Grid, r physics.Rect) bool {
	size := 2 * grid.TileSize
	for _, p := range pr.slots {
		if p == nil {
			continue
		}
		fx, fy := grid.TileToWorld(p.AnchorX, p.AnchorY)
		if r.X < fx+size && fx < r.X+r.W && r.Y < fy+size && fy < r.Y+r.H {
			return true
		}
	}
	return false
}

// Tick runs once per simulation tick after the physics step. It tests the
// body's hit box center against both triggers and teleports it through the
// first one that is not locked. The probe also covers the displacement the
// step just cancelled, so a body stopped short of a portal wall still enters.
func (pr *Pair) Tick(b *physics.Body) (Teleport, bool) {
	if pr.cooldown > 0 {
		pr.cooldown--
	}

	center := b.Center()
	probe := add(center, b.Blocked)

	if pr.lastUsed != NoSlot && pr.cooldown == 0 {
		p := pr.slots[pr.lastUsed]
		if p == nil || !pr.inTrigger(p, center) {
			pr.lastUsed = NoSlot
		}
	}

	if !pr.Linked() {
		return Teleport{}, false
	}

	for _, s := range [2]Slot{SlotA, SlotB} {
		if s == pr.lastUsed {
			continue
		}
		p := pr.slots[s]
		if pr.inTrigger(p, center) || pr.inTrigger(p, probe) {
			return pr.teleport(b, s), true
		}
	}
	return Teleport{}, false
}

func (pr *Pair) teleport(b *physics.Body, from Slot) Teleport {
	in := pr.slots[from]
	out := pr.slots[from.Other()]

	vel := add(b.Vel, b.Blocked)
	exitVel := Transform(vel, in.Orientation, out.Orientation)

	r := b.Bounds()
	half := r.H / 2
	if out.Orientation.Horizontal() {
		half = r.W / 2
	}
	b.SetCenter(add(out.Pos, scale(out.Orientation.Normal(), half+pr.cfg.ExitPad)))
	b.Vel = exitVel
	b.Blocked = dmath.Vec2{}
	b.Grounded = false
	b.WallSide = 0

	pr.lastUsed = out.Slot
	pr.cooldown = pr.cfg.Cooldown

	return Teleport{
		From:      from,
		To:        out.Slot,
		Direction: out.Orientation,
		Vel:       exitVel,
	}
}

// Transform re-projects a world velocity entering a portal facing entry into
// the frame of a portal facing exit. The normal component is negated so the
// body always leaves moving away from the exit wall; the tangent component
// is kept.
func Transform(v dmath.Vec2, entry, exit Orientation) dmath.Vec2 {
	n := dot(v, entry.Normal())
	t := dot(v, entry.Tangent())
	return add(scale(exit.Normal(), -n), scale(exit.Tangent(), t))
}

func (pr *Pair) inTrigger(p *Portal, point dmath.Vec2) bool {
	d := dmath.Vec2{X: point.X - p.Pos.X, Y: point.Y - p.Pos.Y}
	n := dot(d, p.Orientation.Normal()) / pr.cfg.TriggerNormal
	t := dot(d, p.Orientation.Tangent()) / pr.cfg.TriggerTangent
	return n*n+t*t <= 1
}
