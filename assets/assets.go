package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/logger"
	"github.com/automoto/portalfling/shared/leveldata"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader loads the embedded TMX levels.
type LevelLoader struct {
	dir string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{dir: config.Level.Dir}
}

// LoadLevels decodes every level, keyed by name, with the names in play order.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, l.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load levels: %w", err)
	}
	for _, name := range names {
		lvl := levels[name]
		logger.Log.WithFields(logrus.Fields{
			"level":    name,
			"size":     fmt.Sprintf("%dx%d", lvl.Map.Width, lvl.Map.Height),
			"tutorial": lvl.Tutorial,
		}).Debug("level loaded")
	}
	return levels, names, nil
}

// MustLoadLevels is LoadLevels for startup paths where a broken build should
// stop the game.
func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels, names
}
