package systems

import (
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reads raw device state.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

// EbitenInput polls the devices ebiten sees.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenInput) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, button)
}

// NewUpdateInput returns a system that polls src and updates the Input component.
// Must run BEFORE any system that reads actions.
func NewUpdateInput(src InputSource) ecs.System {
	// Reusable slice for gamepad IDs to avoid allocations
	var gamepadIDs []ebiten.GamepadID

	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		gamepadIDs = src.AppendGamepadIDs(gamepadIDs[:0])

		var keyboardUsed, gamepadUsed bool
		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
					keyboardUsed = true
				}
			}
			for _, gpID := range gamepadIDs {
				for _, btn := range binding.StandardGamepadButtons {
					if src.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
						gamepadUsed = true
					}
				}
			}
		}

		// Gamepad takes priority if both were used
		if gamepadUsed {
			input.LastInputMethod = components.InputGamepad
		} else if keyboardUsed {
			input.LastInputMethod = components.InputKeyboard
		}
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
