// Package leveldata decodes TMX levels into the plain tile map the simulation
// consumes. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/portalfling/shared/tilemap"
)

const (
	// TileLayer is the tile layer holding the collision grid.
	TileLayer = "tiles"
	// SpawnGroup is the object group holding player spawn points.
	SpawnGroup = "PlayerSpawn"

	// DefaultTutorialSeparation is the portal spacing, in tiles, used by a
	// tutorial level that does not set minPortalSeparation.
	DefaultTutorialSeparation = 3
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Level is everything the game needs from one TMX file.
type Level struct {
	Name     string
	Map      tilemap.TileMap
	TileSize int

	// SolidIDs and BannedIDs come from the tileset's "solid" and "noportal"
	// tile properties. Nil means the tileset declared none and the grid
	// defaults apply.
	SolidIDs  []int
	BannedIDs []int

	SpawnPoints []SpawnPoint

	Tutorial bool
	// MinPortalSeparation is in tiles. Zero when the level is not a tutorial.
	MinPortalSeparation float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the first spawn point.
func (l *Level) Spawn() SpawnPoint {
	return l.SpawnPoints[0]
}
