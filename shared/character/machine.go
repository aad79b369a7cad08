package character

import (
	"math"

	"github.com/automoto/portalfling/shared/gamemath"
	"github.com/automoto/portalfling/shared/physics"
)

// Machine runs the controller for characters that share one physics world.
type Machine struct {
	cfg  Config
	phys *physics.Integrator
}

func NewMachine(cfg Config, phys *physics.Integrator) *Machine {
	return &Machine{cfg: cfg, phys: phys}
}

// Config returns the tuning the machine was built with.
func (m *Machine) Config() Config {
	return m.cfg
}

// New returns a freshly reset character.
func (m *Machine) New() *Character {
	c := &Character{}
	m.Reset(c)
	return c
}

// Reset puts the character back into its spawn state: falling, facing
// right, aiming straight up at minimum power.
func (m *Machine) Reset(c *Character) {
	*c = Character{
		State:    Airborne,
		Facing:   1,
		AimAngle: math.Pi / 2,
		AimPower: m.cfg.MinPower,
		Anim:     AnimFall,
	}
}

// Update advances the controller by one tick. It runs before the physics
// step and reads the contact flags that step left on the body. inPortal
// reports whether the body overlaps a portal footprint. It returns
// true on the tick a launch happens.
func (m *Machine) Update(c *Character, b *physics.Body, in Input, inPortal bool) bool {
	if c.Detach > 0 {
		c.Detach--
	}
	if c.NoCling > 0 {
		c.NoCling--
	}

	var launched bool
	switch c.State {
	case Ground:
		launched = m.updateGround(c, b, in, inPortal)
	case Cling:
		launched = m.updateCling(c, b, in)
	case Airborne:
		m.updateAirborne(c, b, inPortal)
	}

	c.Facing = m.resolveFacing(c, b, in)
	return launched
}

// OnTeleport drops any wall anchor and keeps the character from clinging
// next to the exit portal.
func (m *Machine) OnTeleport(c *Character, b *physics.Body) {
	if c.State == Cling {
		b.RestoreGravity()
	}
	c.State = Airborne
	c.Aiming = false
	c.ClingSide = 0
	c.NoCling = m.cfg.NoClingTicks
}

func (m *Machine) updateGround(c *Character, b *physics.Body, in Input, inPortal bool) bool {
	if !b.Grounded && !m.phys.GroundWithin(b, m.cfg.GroundProbe) {
		c.Aiming = false
		c.State = Airborne
		m.updateAirborne(c, b, inPortal)
		return false
	}

	b.Vel.X = gamemath.ApplyFriction(b.Vel.X, m.cfg.GroundFriction)

	if m.charge(c, in) {
		m.launch(c, b)
		return true
	}

	switch {
	case c.Aiming:
		c.Anim = AnimAim
	case math.Abs(b.Vel.X) > m.cfg.DashSpeed:
		c.Anim = AnimDash
	default:
		c.Anim = AnimIdle
	}
	return false
}

func (m *Machine) updateCling(c *Character, b *physics.Body, in Input) bool {
	if b.WallSide != c.ClingSide {
		b.RestoreGravity()
		c.State = Airborne
		c.Aiming = false
		c.ClingSide = 0
		c.Anim = AnimFall
		return false
	}

	b.SuspendGravity()
	b.Vel.X = float64(c.ClingSide) * m.cfg.ClingSlide
	b.Vel.Y = 0

	if m.charge(c, in) {
		m.launch(c, b)
		return true
	}

	if c.Aiming {
		c.Anim = AnimClingAim
	} else {
		c.Anim = AnimCling
	}
	return false
}

func (m *Machine) updateAirborne(c *Character, b *physics.Body, inPortal bool) {
	if b.Grounded {
		c.State = Ground
		c.Anim = AnimIdle
		return
	}

	if b.WallSide != 0 && c.Detach == 0 && c.NoCling == 0 && !inPortal {
		if m.phys.SnapToWall(b, b.WallSide, m.phys.Grid().TileSize) {
			m.enterCling(c, b, b.WallSide)
			return
		}
	}

	if b.Vel.Y < 0 {
		c.Anim = AnimJump
	} else {
		c.Anim = AnimFall
	}
}

func (m *Machine) enterCling(c *Character, b *physics.Body, side int) {
	c.State = Cling
	c.ClingSide = side
	c.Aiming = false
	c.Anim = AnimCling
	b.SuspendGravity()
	b.Vel.X = float64(side) * m.cfg.ClingSlide
	b.Vel.Y = 0
}

// charge updates the aim while the charge input is held and reports a
// launch on the tick it is released.
func (m *Machine) charge(c *Character, in Input) bool {
	if in.Jump {
		c.Aiming = true
		m.stepAim(c, in)
		return false
	}
	if c.Aiming {
		c.Aiming = false
		return true
	}
	return false
}

func (m *Machine) stepAim(c *Character, in Input) {
	if in.Left && !in.Right {
		c.AimAngle += m.cfg.AimStep
	} else if in.Right && !in.Left {
		c.AimAngle -= m.cfg.AimStep
	}
	c.AimAngle = gamemath.Clamp(c.AimAngle, m.cfg.minAngle(), m.cfg.maxAngle())

	if in.Down {
		c.AimPower -= 2 * m.cfg.ChargeRate
	} else {
		c.AimPower += m.cfg.ChargeRate
	}
	c.AimPower = gamemath.Clamp(c.AimPower, m.cfg.MinPower, m.cfg.MaxPower)
}

func (m *Machine) launch(c *Character, b *physics.Body) {
	b.RestoreGravity()
	b.Vel.X, b.Vel.Y = gamemath.LaunchVelocity(c.AimAngle, c.AimPower, m.cfg.LaunchFactor)
	b.Grounded = false

	c.State = Airborne
	c.Aiming = false
	c.ClingSide = 0
	c.AimPower = m.cfg.MinPower
	c.Detach = m.cfg.DetachTicks
	c.Anim = AnimJump
}

// resolveFacing never snaps to an arbitrary side: each rule falls back to
// the next, ending with the previous facing.
func (m *Machine) resolveFacing(c *Character, b *physics.Body, in Input) int {
	if c.State == Cling && c.ClingSide != 0 {
		return c.ClingSide
	}
	if c.Aiming && (c.State == Ground || c.State == Cling) {
		if s := gamemath.Sign(math.Cos(c.AimAngle)); s != 0 {
			return s
		}
		return c.Facing
	}
	if in.Left != in.Right {
		if in.Left {
			return -1
		}
		return 1
	}
	if s := gamemath.Sign(b.Vel.X); s != 0 {
		return s
	}
	return c.Facing
}
