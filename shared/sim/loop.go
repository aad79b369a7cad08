package sim

import "time"

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 50

// FixedStep converts variable frame time into a whole number of fixed ticks.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep creates a clock running tickRate ticks per second. maxSteps
// caps the ticks run for one frame so a long stall cannot spiral.
func NewFixedStep(tickRate, maxSteps int) *FixedStep {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStep{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance adds elapsed to the accumulator, calls tick once per whole step,
// and returns the leftover fraction of a step for render interpolation.
// Time beyond maxSteps is dropped.
func (f *FixedStep) Advance(elapsed time.Duration, tick func()) float64 {
	f.acc += elapsed
	steps := 0
	for f.acc >= f.step {
		if steps == f.maxSteps {
			f.acc %= f.step
			break
		}
		tick()
		f.acc -= f.step
		steps++
	}
	return float64(f.acc) / float64(f.step)
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
