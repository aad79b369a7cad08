package portal

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/tilemap"
)

// Rejection explains why a placement was refused.
type Rejection int

const (
	RejectNone Rejection = iota
	// RejectBanned covers non-portal surfaces, an occupied or out-of-bounds
	// footprint, and missing wall support.
	RejectBanned
	// RejectTooClose is the tutorial rule keeping the two portals apart.
	RejectTooClose
)

func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "ok"
	case RejectBanned:
		return "banned"
	case RejectTooClose:
		return "too close"
	}
	return "unknown"
}

// Candidate is a portal placement that has not been validated yet.
type Candidate struct {
	AnchorX, AnchorY int
	Orientation      Orientation
	Pos              dmath.Vec2
}

// Portal materializes the candidate into the given slot.
func (c Candidate) Portal(slot Slot) Portal {
	return Portal{
		Slot:        slot,
		Pos:         c.Pos,
		Orientation: c.Orientation,
		AnchorX:     c.AnchorX,
		AnchorY:     c.AnchorY,
	}
}

// Anchor derives the 2x2 footprint in front of the face a ray hit. Along the
// wall the footprint is centered on the tile boundary nearest the impact.
func Anchor(grid *tilemap.Grid, hit Hit) Candidate {
	ts := grid.TileSize
	offY := grid.OffsetY()
	o := hit.Orientation()
	c := Candidate{Orientation: o}

	switch o {
	case Up, Down:
		c.AnchorX = int(math.Round(hit.Point.X/ts)) - 1
		c.Pos.X = float64(c.AnchorX+1) * ts
		if o == Up {
			c.AnchorY = hit.TileY - 2
			c.Pos.Y = offY + float64(hit.TileY)*ts
		} else {
			c.AnchorY = hit.TileY + 1
			c.Pos.Y = offY + float64(hit.TileY+1)*ts
		}
	case Right, Left:
		c.AnchorY = int(math.Round((hit.Point.Y-offY)/ts)) - 1
		c.Pos.Y = offY + float64(c.AnchorY+1)*ts
		if o == Right {
			c.AnchorX = hit.TileX + 1
			c.Pos.X = float64(hit.TileX+1) * ts
		} else {
			c.AnchorX = hit.TileX - 2
			c.Pos.X = float64(hit.TileX) * ts
		}
	}
	return c
}

// Validator gates candidates before they become portals.
type Validator struct {
	Grid *tilemap.Grid
	// MinSeparation is the smallest allowed distance in pixels between the
	// two portals. Zero disables the rule; only tutorial levels set it.
	MinSeparation float64
}

// Validate reports whether all four footprint tiles are in bounds and empty,
// and the two tiles behind the wall are solid portal surfaces.
func (v *Validator) Validate(c Candidate) bool {
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			tx, ty := c.AnchorX+dx, c.AnchorY+dy
			if !v.Grid.InBounds(tx, ty) || v.Grid.TileAt(tx, ty) != tilemap.Empty {
				return false
			}
		}
	}
	for _, s := range supports(c) {
		id := v.Grid.TileAt(s[0], s[1])
		if !v.Grid.IsSolid(id) || v.Grid.IsBanned(id) {
			return false
		}
	}
	return true
}

// Check validates c against the grid and against the portal already
// occupying the other slot, if any.
func (v *Validator) Check(c Candidate, other *Portal) Rejection {
	if !v.Validate(c) {
		return RejectBanned
	}
	if other == nil {
		return RejectNone
	}
	if v.MinSeparation > 0 && distance(c.Pos, other.Pos) < v.MinSeparation {
		return RejectTooClose
	}
	if footprintsOverlap(c.AnchorX, c.AnchorY, other.AnchorX, other.AnchorY) {
		return RejectBanned
	}
	return RejectNone
}

// Classify turns a ray hit into a candidate and a verdict. Hits on banned
// tiles are rejected before the footprint is examined.
func (v *Validator) Classify(hit Hit, other *Portal) (Candidate, Rejection) {
	c := Anchor(v.Grid, hit)
	if v.Grid.IsBanned(hit.TileID) {
		return c, RejectBanned
	}
	return c, v.Check(c, other)
}

// supports lists the two tiles directly behind the footprint's wall.
func supports(c Candidate) [2][2]int {
	ax, ay := c.AnchorX, c.AnchorY
	switch c.Orientation {
	case Right:
		return [2][2]int{{ax - 1, ay}, {ax - 1, ay + 1}}
	case Left:
		return [2][2]int{{ax + 2, ay}, {ax + 2, ay + 1}}
	case Up:
		return [2][2]int{{ax, ay + 2}, {ax + 1, ay + 2}}
	default:
		return [2][2]int{{ax, ay - 1}, {ax + 1, ay - 1}}
	}
}

func footprintsOverlap(ax, ay, bx, by int) bool {
	return ax < bx+2 && bx < ax+2 && ay < by+2 && by < ay+2
}

func distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
