package portal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/gamemath"
)

// Outcome is reported once a shot finishes travelling.
type Outcome struct {
	Slot            Slot
	Hit             bool
	HitValidSurface bool
	Banned          bool
	TooClose        bool
	ImpactPoint     dmath.Vec2
	TileID          int
}

// Placed reports whether the shot became a portal.
func (o Outcome) Placed() bool {
	return o.Hit && !o.Banned && !o.TooClose
}

// Shot is a portal cast in flight. The ray is resolved when fired; the
// outcome is held back until the projectile reaches the impact point so
// feedback lines up with what is drawn.
type Shot struct {
	Slot   Slot
	Start  dmath.Vec2
	Dir    dmath.Vec2
	Hit    Hit
	HasHit bool
	// Head is the current tip of the projectile.
	Head dmath.Vec2
	// Rejection is the verdict at fire time. It is checked again on arrival.
	Rejection Rejection

	candidate Candidate
	travel    *gween.Tween
}

// Ticks is the travel time of a shot covering dist pixels.
func Ticks(dist, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return dist / speed
}

// ShotConfig tunes shot travel.
type ShotConfig struct {
	Speed       float64 // px per tick
	MaxDistance float64
}

// DefaultShotConfig matches the tuning in config.Portal.
var DefaultShotConfig = ShotConfig{
	Speed:       30,
	MaxDistance: MaxCastDistance,
}

// Launcher fires shots and resolves them into the pair.
type Launcher struct {
	cfg       ShotConfig
	validator *Validator
	pair      *Pair
	shots     []*Shot
}

func NewLauncher(cfg ShotConfig, validator *Validator, pair *Pair) *Launcher {
	return &Launcher{cfg: cfg, validator: validator, pair: pair}
}

// Fire casts from origin toward target for the given slot. A shot already in
// flight for that slot is discarded. It returns nil when origin and target
// coincide.
func (l *Launcher) Fire(slot Slot, origin, target dmath.Vec2) *Shot {
	dx, dy, length := gamemath.Normalize(target.X-origin.X, target.Y-origin.Y)
	if length == 0 {
		return nil
	}
	dir := dmath.Vec2{X: dx, Y: dy}

	s := &Shot{Slot: slot, Start: origin, Dir: dir, Head: origin}
	dist := l.cfg.MaxDistance
	if hit, ok := Cast(l.validator.Grid, origin, dir, l.cfg.MaxDistance); ok {
		s.Hit = hit
		s.HasHit = true
		dist = hit.Dist
		s.candidate, s.Rejection = l.validator.Classify(hit, l.other(slot))
	}
	s.travel = gween.New(0, float32(dist), float32(Ticks(dist, l.cfg.Speed)), ease.Linear)

	l.drop(slot)
	l.shots = append(l.shots, s)
	return s
}

// Advance moves every shot one tick and resolves those that arrived.
func (l *Launcher) Advance() []Outcome {
	var out []Outcome
	kept := l.shots[:0]
	for _, s := range l.shots {
		d, done := s.travel.Update(1)
		s.Head = add(s.Start, scale(s.Dir, float64(d)))
		if !done {
			kept = append(kept, s)
			continue
		}
		out = append(out, l.resolve(s))
	}
	for i := len(kept); i < len(l.shots); i++ {
		l.shots[i] = nil
	}
	l.shots = kept
	return out
}

// Shots returns the shots in flight.
func (l *Launcher) Shots() []Shot {
	out := make([]Shot, len(l.shots))
	for i, s := range l.shots {
		out[i] = *s
	}
	return out
}

// Clear discards every shot in flight without reporting outcomes.
func (l *Launcher) Clear() {
	l.shots = nil
}

// resolve validates the candidate against the pair as it stands on arrival
// and places the portal when it passes.
func (l *Launcher) resolve(s *Shot) Outcome {
	o := Outcome{Slot: s.Slot, Hit: s.HasHit}
	if !s.HasHit {
		return o
	}
	o.ImpactPoint = s.Hit.Point
	o.TileID = s.Hit.TileID
	o.HitValidSurface = !l.validator.Grid.IsBanned(s.Hit.TileID)

	rej := RejectBanned
	if o.HitValidSurface {
		rej = l.validator.Check(s.candidate, l.other(s.Slot))
	}
	switch rej {
	case RejectBanned:
		o.Banned = true
	case RejectTooClose:
		o.TooClose = true
	default:
		l.pair.Place(s.candidate.Portal(s.Slot))
	}
	return o
}

func (l *Launcher) other(slot Slot) *Portal {
	if p, ok := l.pair.Get(slot.Other()); ok {
		return &p
	}
	return nil
}

func (l *Launcher) drop(slot Slot) {
	kept := l.shots[:0]
	for _, s := range l.shots {
		if s.Slot != slot {
			kept = append(kept, s)
		}
	}
	l.shots = kept
}
