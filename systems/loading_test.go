package systems

import (
	"testing"

	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestLoadingGateWaitsForAssets(t *testing.T) {
	e := newTestECS()
	status := &fakeStatus{}
	entered := 0
	gate := NewUpdateLoadingGate(status, func(*ecs.ECS) { entered++ })

	for i := 0; i < 10; i++ {
		gate(e)
	}
	assert.Equal(t, cfg.ScreenLoading, CurrentScreen(e))
	assert.Zero(t, entered)
	assert.Equal(t, 10, status.polls)

	status.done = true
	gate(e)
	assert.Equal(t, cfg.ScreenGame, CurrentScreen(e))
	assert.Equal(t, 1, entered)
}

func TestLoadingGateRecordsPending(t *testing.T) {
	e := newTestECS()
	status := &fakeStatus{pending: 2}
	gate := NewUpdateLoadingGate(status, nil)

	gate(e)
	assert.Equal(t, 2, GetOrCreateLoading(e).Pending)

	status.pending = 0
	status.done = true
	gate(e)
	assert.Zero(t, GetOrCreateLoading(e).Pending)
	assert.Equal(t, cfg.ScreenGame, CurrentScreen(e))
}

func TestLoadingDetail(t *testing.T) {
	assert.Equal(t, cfg.Asset.ModelPath, loadingDetail(0))
	assert.Equal(t, cfg.Asset.ModelPath+" (1 asset remaining)", loadingDetail(1))
	assert.Equal(t, cfg.Asset.ModelPath+" (3 assets remaining)", loadingDetail(3))
}

func TestLoadingGateFiresOnce(t *testing.T) {
	e := newTestECS()
	status := &fakeStatus{done: true}
	entered := 0
	gate := NewUpdateLoadingGate(status, func(*ecs.ECS) { entered++ })

	for i := 0; i < 5; i++ {
		gate(e)
	}
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, GetOrCreateScreen(e).Transitions)
	// Once in Game the gate stops polling
	assert.Equal(t, 1, status.polls)
}

func TestLoadingPulseFlipsDirection(t *testing.T) {
	e := newTestECS()
	GetOrCreateClock(e)
	loading := GetOrCreateLoading(e)
	assert.False(t, loading.FadeIn)
	assert.Equal(t, float32(1), loading.Alpha)

	AdvanceClock(e, float64(cfg.Loading.PulseDuration)/2)
	UpdateLoadingScreen(e)
	assert.Less(t, loading.Alpha, float32(1))
	assert.Greater(t, loading.Alpha, cfg.Loading.PulseMinAlpha)
	assert.False(t, loading.FadeIn)

	AdvanceClock(e, float64(cfg.Loading.PulseDuration))
	UpdateLoadingScreen(e)
	assert.InDelta(t, cfg.Loading.PulseMinAlpha, loading.Alpha, 1e-4)
	assert.True(t, loading.FadeIn)
}

func TestFadeClampsAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), fade(cfg.White, -1).A)
	assert.Equal(t, uint8(255), fade(cfg.White, 2).A)
	half := fade(cfg.White, 0.5)
	assert.Equal(t, half.R, half.A)
}
