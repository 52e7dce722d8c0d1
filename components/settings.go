package components

import "github.com/yohamta/donburi"

// SettingsData holds window preferences that survive restarts.
type SettingsData struct {
	Fullscreen bool
	Dirty      bool // Changed since the last save
	Debug      bool // Overlay visible, not persisted
}

var Settings = donburi.NewComponentType[SettingsData]()
