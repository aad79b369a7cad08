package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/portalfling/shared/tilemap"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (the game) or os.DirFS and fstest.MapFS (tools and tests).
//
// A tile's id is its global id, so CSV data written by hand and data written
// by Tiled agree. Tileset tiles mark themselves with the bool properties
// "solid" and "noportal". The tile layer may carry "tutorial" (bool) and
// "minPortalSeparation" (float, tiles).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		TileSize: levelMap.TileWidth,
		Map: tilemap.TileMap{
			Width:  levelMap.Width,
			Height: levelMap.Height,
		},
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: no %q layer: %w", tmxPath, TileLayer, tilemap.ErrMalformedMap)
	}

	solid := map[int]bool{}
	banned := map[int]bool{}
	level.Map.Tiles = make([]int, len(layer.Tiles))
	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			continue
		}
		id := int(tile.Tileset.FirstGID + tile.ID)
		level.Map.Tiles[i] = id

		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if tilesetTile.Properties.GetBool("solid") {
				solid[id] = true
			}
			if tilesetTile.Properties.GetBool("noportal") {
				banned[id] = true
			}
		}
	}
	if err := level.Map.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	level.SolidIDs = sortedKeys(solid)
	level.BannedIDs = sortedKeys(banned)

	level.Tutorial = layer.Properties.GetBool("tutorial")
	if level.Tutorial {
		level.MinPortalSeparation = layer.Properties.GetFloat("minPortalSeparation")
		if level.MinPortalSeparation <= 0 {
			level.MinPortalSeparation = DefaultTutorialSeparation
		}
	}

	// Parse player spawn points from PlayerSpawn object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}
	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		a, b := level.SpawnPoints[i], level.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func sortedKeys(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
