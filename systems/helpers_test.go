package systems

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

type fakeInput struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.StandardGamepadButton]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    map[ebiten.Key]bool{},
		buttons: map[ebiten.StandardGamepadButton]bool{},
	}
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	if len(f.buttons) == 0 {
		return ids
	}
	return append(ids, 0)
}

func (f *fakeInput) IsStandardGamepadButtonPressed(_ ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return f.buttons[button]
}

type fakeWindow struct {
	fullscreen bool
	calls      int
}

func (w *fakeWindow) IsFullscreen() bool { return w.fullscreen }

func (w *fakeWindow) SetFullscreen(full bool) {
	w.fullscreen = full
	w.calls++
}

type fakeStore struct {
	items   map[string][]byte
	saveErr error
	loadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string][]byte{}}
}

func (s *fakeStore) LoadItem(key string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items[key], nil
}

func (s *fakeStore) SaveItem(key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items[key] = data
	return nil
}

var errDisk = errors.New("disk full")

type fakeStatus struct {
	done    bool
	pending int
	polls   int
}

func (s *fakeStatus) IsAllDone() bool {
	s.polls++
	return s.done
}

func (s *fakeStatus) Pending() int { return s.pending }
