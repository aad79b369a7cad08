// Package character implements the fling controller: a character is either on
// the ground, in the air, or clinging to a wall. Horizontal input never walks;
// it only steers the aim while the charge input is held.
package character

import "math"

// State is the controller's discriminant.
type State int

const (
	Ground State = iota
	Airborne
	Cling
)

func (s State) String() string {
	switch s {
	case Ground:
		return "ground"
	case Airborne:
		return "airborne"
	case Cling:
		return "cling"
	}
	return "unknown"
}

// Animation is what the renderer should show for the current tick.
type Animation int

const (
	AnimIdle Animation = iota
	AnimDash
	AnimAim
	AnimJump
	AnimFall
	AnimCling
	AnimClingAim
)

func (a Animation) String() string {
	return [...]string{"idle", "dash", "aim", "jump", "fall", "cling", "cling_aim"}[a]
}

// Input is the decoded per-tick button state. Jump is the charge input.
type Input struct {
	Left, Right, Up, Down, Jump bool
}

// Character is the controller state owned by one player.
type Character struct {
	State  State
	Facing int // -1 or 1

	AimAngle float64 // radians, upper half-plane
	AimPower float64
	Aiming   bool

	// Detach counts down after a deliberate launch; clinging is suppressed
	// until it reaches zero.
	Detach int
	// NoCling suppresses clinging entirely, e.g. right after a teleport.
	NoCling int

	ClingSide int // side of the anchored wall, -1 or 1
	Anim      Animation
}

// Config holds the fling tuning.
type Config struct {
	AimStep     float64 // radians per tick while left/right is held
	AngleMargin float64 // keeps the aim off the horizon

	ChargeRate float64 // power per tick; down de-charges at twice this
	MinPower   float64
	MaxPower   float64
	// LaunchFactor converts charged power into launch speed.
	LaunchFactor float64

	DetachTicks  int
	NoClingTicks int

	ClingSlide     float64 // horizontal push into the wall while clinging
	GroundFriction float64
	DashSpeed      float64 // residual |vx| above which the dash animation plays
	GroundProbe    float64 // px below the feet still counted as standing
}

// DefaultConfig matches the tuning in config.Fling.
var DefaultConfig = Config{
	AimStep:        0.04,
	AngleMargin:    0.05,
	ChargeRate:     0.12,
	MinPower:       3,
	MaxPower:       10,
	LaunchFactor:   0.85,
	DetachTicks:    2,
	NoClingTicks:   12,
	ClingSlide:     0.3,
	GroundFriction: 0.2,
	DashSpeed:      0.5,
	GroundProbe:    10,
}

func (c *Config) minAngle() float64 { return c.AngleMargin }
func (c *Config) maxAngle() float64 { return math.Pi - c.AngleMargin }
