package portal

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/portalfling/shared/gamemath"
	"github.com/automoto/portalfling/shared/tilemap"
)

// MaxCastDistance bounds every portal ray, in pixels.
const MaxCastDistance = 2000.0

// Axis is the grid axis whose boundary a ray crossed to enter the hit tile.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Hit describes where a ray first entered a solid tile.
type Hit struct {
	Point        dmath.Vec2 // world px
	Axis         Axis
	StepX, StepY int
	TileX, TileY int
	TileID       int
	Dist         float64
}

// Orientation is the outward normal of the face the ray entered through.
func (h Hit) Orientation() Orientation {
	if h.Axis == AxisX {
		if h.StepX > 0 {
			return Left
		}
		return Right
	}
	if h.StepY > 0 {
		return Up
	}
	return Down
}

// Cast walks the grid from origin along dir one cell boundary at a time and
// returns the first solid tile entered within maxDist pixels. The origin's
// own tile is never reported. A zero direction is a miss.
func Cast(grid *tilemap.Grid, origin, dir dmath.Vec2, maxDist float64) (Hit, bool) {
	dx, dy, length := gamemath.Normalize(dir.X, dir.Y)
	if length == 0 {
		return Hit{}, false
	}

	ts := grid.TileSize
	ox := origin.X
	oy := origin.Y - grid.OffsetY()
	tx := int(math.Floor(ox / ts))
	ty := int(math.Floor(oy / ts))

	stepX, deltaX, sideX := axisStep(ox, dx, tx, ts)
	stepY, deltaY, sideY := axisStep(oy, dy, ty, ts)

	w, h := grid.Map.Width, grid.Map.Height
	for {
		var t float64
		var axis Axis
		if sideX < sideY {
			t = sideX
			tx += stepX
			sideX += deltaX
			axis = AxisX
		} else {
			t = sideY
			ty += stepY
			sideY += deltaY
			axis = AxisY
		}
		if t > maxDist {
			return Hit{}, false
		}
		if leaving(tx, stepX, w) || leaving(ty, stepY, h) {
			return Hit{}, false
		}

		id := grid.TileAt(tx, ty)
		if !grid.IsSolid(id) {
			continue
		}
		return Hit{
			Point:  dmath.Vec2{X: origin.X + dx*t, Y: origin.Y + dy*t},
			Axis:   axis,
			StepX:  stepX,
			StepY:  stepY,
			TileX:  tx,
			TileY:  ty,
			TileID: id,
			Dist:   t,
		}, true
	}
}

// axisStep returns the step sign, the ray length between two boundaries on
// this axis, and the ray length to the first boundary. A zero component
// never crosses a boundary.
func axisStep(o, d float64, tile int, ts float64) (step int, delta, side float64) {
	switch {
	case d > 0:
		return 1, ts / d, (float64(tile+1)*ts - o) / d
	case d < 0:
		return -1, ts / -d, (o - float64(tile)*ts) / -d
	}
	return 0, math.Inf(1), math.Inf(1)
}

// leaving reports whether the ray is outside the map on this axis and will
// never come back.
func leaving(idx, step, size int) bool {
	return (idx < 0 && step <= 0) || (idx >= size && step >= 0)
}
