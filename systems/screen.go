package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ErrInvalidTransition is returned for backwards or repeated screen transitions.
var ErrInvalidTransition = errors.New("invalid screen transition")

// ScreenEnterFunc runs synchronously when a screen is entered.
type ScreenEnterFunc func(e *ecs.ECS)

// GetOrCreateScreen returns the singleton Screen component. A new screen
// starts in Loading.
func GetOrCreateScreen(e *ecs.ECS) *components.ScreenData {
	entry, ok := components.Screen.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Screen))
		components.Screen.SetValue(entry, components.ScreenData{Current: cfg.ScreenLoading})
	}
	return components.Screen.Get(entry)
}

// CurrentScreen returns the active screen.
func CurrentScreen(e *ecs.ECS) cfg.ScreenID {
	return GetOrCreateScreen(e).Current
}

// TransitionScreen moves to a later screen and then calls onEnter.
// Screens only move forward; anything else is ErrInvalidTransition and
// leaves the state untouched.
func TransitionScreen(e *ecs.ECS, to cfg.ScreenID, onEnter ScreenEnterFunc) error {
	screen := GetOrCreateScreen(e)
	from := screen.Current
	if to <= from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	screen.Current = to
	screen.Transitions++
	logger.Get().Info("screen transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to))

	if onEnter != nil {
		onEnter(e)
	}
	return nil
}

// WithScreen wraps a system to run only while the given screen is active.
func WithScreen(screen cfg.ScreenID, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentScreen(e) != screen {
			return
		}
		system(e)
	}
}

// WithScreenRenderer wraps a renderer to draw only while the given screen is active.
func WithScreenRenderer(screen cfg.ScreenID, renderer func(*ecs.ECS, *ebiten.Image)) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, img *ebiten.Image) {
		if CurrentScreen(e) != screen {
			return
		}
		renderer(e, img)
	}
}
