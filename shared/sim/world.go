// Package sim owns one running level: the grid, the character, its body and
// the portal pair. Everything the tick touches hangs off World; there is no
// package-level state, so several worlds can run side by side.
package sim

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/character"
	"github.com/automoto/portalfling/shared/physics"
	"github.com/automoto/portalfling/shared/portal"
	"github.com/automoto/portalfling/shared/tilemap"
)

// Config wires the tuning of every subsystem.
type Config struct {
	TileSize     float64
	CanvasHeight float64

	Physics physics.Config
	Fling   character.Config
	Pair    portal.PairConfig
	Shot    portal.ShotConfig

	BodyW, BodyH float64
	HitBox       *physics.Rect
}

// DefaultConfig is the tuning used by tests and by the game when no
// override file is present.
var DefaultConfig = Config{
	TileSize:     16,
	CanvasHeight: 360,
	Physics:      physics.DefaultConfig,
	Fling:        character.DefaultConfig,
	Pair:         portal.DefaultPairConfig,
	Shot:         portal.DefaultShotConfig,
	BodyW:        12,
	BodyH:        14,
}

// ShotRequest asks for a portal shot toward a world position.
type ShotRequest struct {
	Slot   portal.Slot
	Target dmath.Vec2
}

// Input is everything the world consumes in one tick.
type Input struct {
	character.Input
	Shoot *ShotRequest
}

// Events are optional listeners. Nil callbacks are skipped.
type Events struct {
	OnTeleported func(dir portal.Orientation)
	OnShot       func(o portal.Outcome)
	OnLaunched   func(vel dmath.Vec2)
}

// World is a single simulation.
type World struct {
	cfg    Config
	events Events

	grid      *tilemap.Grid
	phys      *physics.Integrator
	machine   *character.Machine
	validator *portal.Validator
	pair      *portal.Pair
	launcher  *portal.Launcher

	char *character.Character
	body *physics.Body
	prev dmath.Vec2

	ticks int
}

// NewWorld builds a world for m. The character is placed with Respawn.
func NewWorld(m tilemap.TileMap, cfg Config, events Events) (*World, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	grid := tilemap.NewGrid(m, cfg.TileSize, cfg.CanvasHeight)
	phys := physics.NewIntegrator(grid, cfg.Physics)
	validator := &portal.Validator{Grid: grid}
	pair := portal.NewPair(cfg.Pair)

	w := &World{
		cfg:       cfg,
		events:    events,
		grid:      grid,
		phys:      phys,
		machine:   character.NewMachine(cfg.Fling, phys),
		validator: validator,
		pair:      pair,
		launcher:  portal.NewLauncher(cfg.Shot, validator, pair),
		body:      physics.NewBody(0, 0, cfg.BodyW, cfg.BodyH),
	}
	if cfg.HitBox != nil {
		hb := *cfg.HitBox
		w.body.HitBox = &hb
	}
	w.char = w.machine.New()
	return w, nil
}

// SetEvents replaces the listeners.
func (w *World) SetEvents(ev Events) {
	w.events = ev
}

// SetSolidTileIDs replaces the ids that block movement and portal rays.
func (w *World) SetSolidTileIDs(ids ...int) {
	w.grid.SetSolidTileIDs(ids...)
}

// SetMinPortalSeparation enables the tutorial spacing rule. Zero disables it.
func (w *World) SetMinPortalSeparation(dist float64) {
	w.validator.MinSeparation = dist
}

// Respawn puts the character at (x, y), at rest, and clears both portals and
// any shot in flight.
func (w *World) Respawn(x, y float64) {
	w.body.Pos = dmath.Vec2{X: x, Y: y}
	w.body.Stop()
	w.body.Blocked = dmath.Vec2{}
	w.body.RestoreGravity()
	w.body.Grounded = false
	w.body.WallSide = 0
	w.prev = w.body.Pos

	w.machine.Reset(w.char)
	w.pair.Reset()
	w.launcher.Clear()
}

// Tick runs one fixed step: shot request, state machine, physics, portal
// crossing, then shot resolution.
func (w *World) Tick(in Input) {
	w.ticks++
	w.prev = w.body.Pos

	if in.Shoot != nil {
		w.launcher.Fire(in.Shoot.Slot, w.body.Center(), in.Shoot.Target)
	}

	inPortal := w.pair.OverlapsFootprint(w.grid, w.body.Bounds())
	if w.machine.Update(w.char, w.body, in.Input, inPortal) && w.events.OnLaunched != nil {
		w.events.OnLaunched(w.body.Vel)
	}

	w.phys.Step(w.body)

	if tp, ok := w.pair.Tick(w.body); ok {
		w.machine.OnTeleport(w.char, w.body)
		w.prev = w.body.Pos
		if w.events.OnTeleported != nil {
			w.events.OnTeleported(tp.Direction)
		}
	}

	for _, o := range w.launcher.Advance() {
		if w.events.OnShot != nil {
			w.events.OnShot(o)
		}
	}
}

// Interpolated blends the previous and current body position. alpha is the
// fraction of a tick accumulated since the last Tick.
func (w *World) Interpolated(alpha float64) dmath.Vec2 {
	return dmath.Vec2{
		X: w.prev.X + (w.body.Pos.X-w.prev.X)*alpha,
		Y: w.prev.Y + (w.body.Pos.Y-w.prev.Y)*alpha,
	}
}

func (w *World) Grid() *tilemap.Grid             { return w.grid }
func (w *World) Body() *physics.Body             { return w.body }
func (w *World) Character() *character.Character { return w.char }
func (w *World) Portals() []portal.Portal        { return w.pair.Portals() }
func (w *World) Shots() []portal.Shot            { return w.launcher.Shots() }
func (w *World) Ticks() int                      { return w.ticks }
func (w *World) Config() Config                  { return w.cfg }

// Trigger returns the portal whose trigger holds the body's center.
func (w *World) Trigger() (portal.Slot, bool) {
	return w.pair.Overlapping(w.body.Center())
}

// MinPortalSeparation returns the active spacing rule.
func (w *World) MinPortalSeparation() float64 {
	return w.validator.MinSeparation
}
