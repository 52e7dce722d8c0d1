package systems

import (
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WindowController is the part of the window the settings system drives.
type WindowController interface {
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
}

// EbitenWindow controls the real ebiten window.
type EbitenWindow struct{}

func (EbitenWindow) IsFullscreen() bool      { return ebiten.IsFullscreen() }
func (EbitenWindow) SetFullscreen(full bool) { ebiten.SetFullscreen(full) }

// NewUpdateSettings returns a system that toggles fullscreen and persists it.
func NewUpdateSettings(window WindowController) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettings(e, window)
		input := GetOrCreateInput(e)

		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			settings.Fullscreen = !settings.Fullscreen
			settings.Dirty = true
			window.SetFullscreen(settings.Fullscreen)
		}
		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
		}
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the window's current state.
func GetOrCreateSettings(e *ecs.ECS, window WindowController) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Fullscreen: window.IsFullscreen(),
			Debug:      cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
