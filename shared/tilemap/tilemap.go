// Package tilemap is the read-only collision surface of a level: a flat
// row-major grid of tile ids plus the sets that classify them. It has no
// dependencies on ebitengine, donburi, or resolv.
package tilemap

import (
	"errors"
	"fmt"
	"math"
)

// Reserved tile ids. Any other nonzero id is solid only if listed in the
// grid's solid set.
const (
	Empty  = 0
	Solid  = 1
	Grey   = 2 // solid, but portals cannot attach to it
	Finish = 3 // goal trigger, no collision
	Spike  = 4 // hazard, no collision, lethal on overlap
)

// ErrMalformedMap is returned when the tile array does not match the map size.
var ErrMalformedMap = errors.New("malformed tile map")

// TileMap is a decoded level. It is never modified during gameplay.
type TileMap struct {
	Width  int
	Height int
	Tiles  []int
}

// Validate reports a load-time error if the tile array is short or long.
func (m TileMap) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformedMap, m.Width, m.Height)
	}
	if len(m.Tiles) != m.Width*m.Height {
		return fmt.Errorf("%w: %d tiles for %dx%d", ErrMalformedMap, len(m.Tiles), m.Width, m.Height)
	}
	return nil
}

// Grid answers tile queries for one level in world pixel coordinates.
// The map is anchored to the bottom of the canvas.
type Grid struct {
	Map          TileMap
	TileSize     float64
	CanvasHeight float64

	solid  map[int]struct{}
	banned map[int]struct{}
}

// NewGrid creates a grid with the default solid set {Solid, Grey} and the
// default banned set {Grey, Finish, Spike}.
func NewGrid(m TileMap, tileSize, canvasHeight float64) *Grid {
	g := &Grid{
		Map:          m,
		TileSize:     tileSize,
		CanvasHeight: canvasHeight,
	}
	g.SetSolidTileIDs(Solid, Grey)
	g.SetBannedTileIDs(Grey, Finish, Spike)
	return g
}

// SetSolidTileIDs replaces the set of ids that block movement.
func (g *Grid) SetSolidTileIDs(ids ...int) {
	g.solid = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id == Empty {
			continue
		}
		g.solid[id] = struct{}{}
	}
}

// SetBannedTileIDs replaces the set of ids portals may not attach to.
func (g *Grid) SetBannedTileIDs(ids ...int) {
	g.banned = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		g.banned[id] = struct{}{}
	}
}

// SolidTileIDs returns the current solid set.
func (g *Grid) SolidTileIDs() []int {
	ids := make([]int, 0, len(g.solid))
	for id := range g.solid {
		ids = append(ids, id)
	}
	return ids
}

func (g *Grid) IsSolid(id int) bool {
	_, ok := g.solid[id]
	return ok
}

func (g *Grid) IsBanned(id int) bool {
	_, ok := g.banned[id]
	return ok
}

// InBounds reports whether (tx, ty) is inside the map.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.Map.Width && ty < g.Map.Height
}

// TileAt returns the tile id at (tx, ty), or Empty outside the map.
func (g *Grid) TileAt(tx, ty int) int {
	if !g.InBounds(tx, ty) {
		return Empty
	}
	return g.Map.Tiles[ty*g.Map.Width+tx]
}

// SolidAt reports whether the tile at (tx, ty) blocks movement.
func (g *Grid) SolidAt(tx, ty int) bool {
	return g.IsSolid(g.TileAt(tx, ty))
}

// OffsetY is the world Y of the map's top row.
func (g *Grid) OffsetY() float64 {
	return g.CanvasHeight - float64(g.Map.Height)*g.TileSize
}

// WorldToTile converts a world pixel position to tile indices.
func (g *Grid) WorldToTile(x, y float64) (tx, ty int) {
	tx = int(math.Floor(x / g.TileSize))
	ty = int(math.Floor((y - g.OffsetY()) / g.TileSize))
	return tx, ty
}

// TileToWorld returns the world position of a tile's top-left corner.
func (g *Grid) TileToWorld(tx, ty int) (x, y float64) {
	return float64(tx) * g.TileSize, g.OffsetY() + float64(ty)*g.TileSize
}

// WorldSize returns the map's extent in pixels.
func (g *Grid) WorldSize() (w, h float64) {
	return float64(g.Map.Width) * g.TileSize, float64(g.Map.Height) * g.TileSize
}

// RectOverlapsSolid reports whether the rectangle touches any solid tile.
// Edges are exclusive on the right and bottom so a body resting exactly on
// a tile boundary does not count as overlapping it.
func (g *Grid) RectOverlapsSolid(x, y, w, h float64) bool {
	return g.rectAny(x, y, w, h, g.SolidAt)
}

// RectTouches reports whether the rectangle overlaps any tile with the given id.
func (g *Grid) RectTouches(x, y, w, h float64, id int) bool {
	return g.rectAny(x, y, w, h, func(tx, ty int) bool {
		return g.TileAt(tx, ty) == id
	})
}

func (g *Grid) rectAny(x, y, w, h float64, pred func(tx, ty int) bool) bool {
	const eps = 1e-9
	minX, minY := g.WorldToTile(x, y)
	maxX, maxY := g.WorldToTile(x+w-eps, y+h-eps)
	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			if pred(tx, ty) {
				return true
			}
		}
	}
	return false
}

// Positions returns the indices of every tile with the given id, row by row.
func (g *Grid) Positions(id int) [][2]int {
	var out [][2]int
	for ty := 0; ty < g.Map.Height; ty++ {
		for tx := 0; tx < g.Map.Width; tx++ {
			if g.Map.Tiles[ty*g.Map.Width+tx] == id {
				out = append(out, [2]int{tx, ty})
			}
		}
	}
	return out
}
