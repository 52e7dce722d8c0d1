package config

// SettingsConfig controls where viewer preferences are persisted
type SettingsConfig struct {
	AppName     string // gdata application namespace
	SettingsKey string // item name inside the namespace
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "pccase-viewer",
		SettingsKey: "settings",
	}
}
