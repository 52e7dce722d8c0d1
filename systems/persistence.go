package systems

import (
	"encoding/json"

	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

// SettingsStore persists raw settings items.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	settingsStore = m
	return nil
}

// SetSettingsStore replaces the backing store. A nil store disables persistence.
func SetSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		logger.Get().Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return settingsStore.SaveItem(cfg.Settings.SettingsKey, data)
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SaveCurrentSettings saves the settings component if it changed.
func SaveCurrentSettings(s *components.SettingsData) {
	if !s.Dirty {
		return
	}
	if err := SaveSettings(&SavedSettings{Fullscreen: s.Fullscreen}); err != nil {
		logger.Get().Warn("could not save settings", zap.Error(err))
		return
	}
	s.Dirty = false
}
