package scenes

import (
	"testing"
	"time"

	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/systems"
	"github.com/automoto/pccase-viewer/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type idleInput struct{}

func (idleInput) IsKeyPressed(ebiten.Key) bool { return false }

func (idleInput) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID { return ids }

func (idleInput) IsStandardGamepadButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

type stubWindow struct{ fullscreen bool }

func (w *stubWindow) IsFullscreen() bool      { return w.fullscreen }
func (w *stubWindow) SetFullscreen(full bool) { w.fullscreen = full }

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestViewerSpawnsOnceAfterLoading(t *testing.T) {
	systems.SetSettingsStore(nil)

	release := make(chan struct{})
	mesh := &assets.Mesh{
		Name:      "pc_case",
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   make([]mgl64.Vec3, 3),
		Indices:   []uint32{0, 1, 2},
	}
	tracker := assets.NewTracker(func(string, int) (*assets.Mesh, error) {
		<-release
		return mesh, nil
	})
	level := assets.LoadLevelAssets(tracker)

	scene := NewViewerScene(ViewerOptions{
		Assets: level,
		Status: tracker,
		Input:  idleInput{},
		Window: &stubWindow{},
	})

	for i := 0; i < 5; i++ {
		scene.Update()
	}
	w := scene.ECS().World
	assert.Equal(t, cfg.ScreenLoading, systems.CurrentScreen(scene.ECS()))
	assert.Zero(t, count(w, tags.MainCamera))

	close(release)
	select {
	case <-level.PcCase.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("model did not load")
	}

	scene.Update()
	assert.Equal(t, cfg.ScreenGame, systems.CurrentScreen(scene.ECS()))

	for i := 0; i < 5; i++ {
		scene.Update()
	}
	assert.Equal(t, 1, count(w, tags.MainCamera))
	assert.Equal(t, 1, count(w, tags.CameraLight))
	assert.Equal(t, 1, count(w, tags.Level))
	assert.Equal(t, 1, count(w, components.SceneRoot))
	assert.Equal(t, 1, count(w, tags.HintLabel))
	assert.Equal(t, 1, systems.GetOrCreateScreen(scene.ECS()).Transitions)

	root, ok := components.SceneRoot.First(w)
	require.True(t, ok)
	assert.Same(t, mesh, components.SceneRoot.Get(root).Mesh)
}

func TestViewerPlacesCameraBeforeFirstFrame(t *testing.T) {
	systems.SetSettingsStore(nil)

	tracker := assets.NewTracker(func(string, int) (*assets.Mesh, error) {
		return &assets.Mesh{}, nil
	})
	level := assets.LoadLevelAssets(tracker)
	<-level.PcCase.Done()

	scene := NewViewerScene(ViewerOptions{
		Assets: level,
		Status: tracker,
		Input:  idleInput{},
		Window: &stubWindow{},
	})
	scene.Update()

	camera, ok := components.OrbitRig.First(scene.ECS().World)
	require.True(t, ok)
	orbit := components.OrbitRig.Get(camera)
	pose := components.GlobalTransform.Get(camera).Pose
	assert.InDelta(t, orbit.Radius, pose.Position.Sub(orbit.Target).Len(), 1e-6)
	want := orbit.Target.Sub(pose.Position).Normalize()
	forward := pose.Forward()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], forward[i], 1e-9)
	}
}
