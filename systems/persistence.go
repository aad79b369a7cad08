package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/portalfling/config"
	"github.com/automoto/portalfling/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	Debug           bool `json:"debug"`
}

// SavedGameProgress is the level the player resumes at plus totals.
type SavedGameProgress struct {
	LevelIndex      int `json:"levelIndex"`
	LevelsCompleted int `json:"levelsCompleted"`
}

// itemStore is the subset of gdata.Manager the game uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "portalfling",
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = m
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem("settings", &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// ApplySavedSettingsGlobal applies settings before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		cfg.Settings.DefaultResolutionIndex = saved.ResolutionIndex
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen {
		res := cfg.ResolutionAt(saved.ResolutionIndex)
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	if saved.Debug {
		cfg.Debug.Enabled = true
	}
}

// LoadGameProgress returns the saved progress, or nil when there is none.
func LoadGameProgress() (*SavedGameProgress, error) {
	var p SavedGameProgress
	ok, err := loadItem("progress", &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SaveLevelCompleted records a finished level. The resume point moves to the
// next level and stays on the last one once every level is done.
func SaveLevelCompleted(levelIndex, levelCount int) error {
	progress, err := LoadGameProgress()
	if err != nil {
		logger.Log.WithError(err).Warn("discarding unreadable progress")
	}
	if progress == nil {
		progress = &SavedGameProgress{}
	}

	next := levelIndex + 1
	if next >= levelCount {
		next = levelCount - 1
	}
	if next > progress.LevelIndex {
		progress.LevelIndex = next
	}
	progress.LevelsCompleted++
	return saveItem("progress", progress)
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem("progress", nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
