package components

import (
	"github.com/automoto/portalfling/shared/sim"
	"github.com/yohamta/donburi"
)

// SimulationData owns the running level simulation and its clock.
type SimulationData struct {
	World *sim.World
	Clock *sim.FixedStep
	// Alpha is the fraction of a tick left in the clock after the last
	// update, used to interpolate the drawn position.
	Alpha float64
	// Pending holds a shot requested on a frame that ran no tick.
	Pending *sim.ShotRequest
}

var Simulation = donburi.NewComponentType[SimulationData]()
