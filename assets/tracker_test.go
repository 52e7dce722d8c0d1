package assets

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/pccase-viewer/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("%s did not finish loading", h.Path)
	}
}

func TestTrackerEmptyIsDone(t *testing.T) {
	assert.True(t, NewTracker(nil).IsAllDone())
}

func TestTrackerReportsDoneOnlyAfterLoad(t *testing.T) {
	release := make(chan struct{})
	tr := NewTracker(func(path string, sceneIndex int) (*Mesh, error) {
		<-release
		return &Mesh{Indices: []uint32{0, 1, 2}}, nil
	})

	h := tr.Load("models/pc_case.glb", 0)
	for i := 0; i < 10; i++ {
		assert.False(t, tr.IsAllDone())
	}
	assert.Nil(t, h.Mesh())
	assert.Equal(t, 1, tr.Pending())

	close(release)
	waitDone(t, h)

	assert.True(t, tr.IsAllDone())
	assert.Equal(t, StatusLoaded, h.Status())
	require.NotNil(t, h.Mesh())
	assert.Equal(t, 1, h.Mesh().TriangleCount())
	assert.NoError(t, h.Err())
	assert.Equal(t, 0, tr.Pending())
}

func TestTrackerWaitsForEveryHandle(t *testing.T) {
	gates := map[string]chan struct{}{
		"a.glb": make(chan struct{}),
		"b.glb": make(chan struct{}),
	}
	tr := NewTracker(func(path string, sceneIndex int) (*Mesh, error) {
		<-gates[path]
		return &Mesh{}, nil
	})
	a := tr.Load("a.glb", 0)
	b := tr.Load("b.glb", 0)

	close(gates["a.glb"])
	waitDone(t, a)
	assert.False(t, tr.IsAllDone())

	close(gates["b.glb"])
	waitDone(t, b)
	assert.True(t, tr.IsAllDone())
}

func TestTrackerFailureNeverCompletes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	boom := errors.New("boom")
	tr := NewTracker(func(path string, sceneIndex int) (*Mesh, error) {
		return nil, boom
	})
	h := tr.Load("missing.glb", 0)
	waitDone(t, h)

	assert.False(t, tr.IsAllDone())
	assert.Equal(t, StatusFailed, h.Status())
	assert.ErrorIs(t, h.Err(), boom)
	assert.Nil(t, h.Mesh())
	assert.Equal(t, 1, logs.FilterMessage("asset failed to load").Len())
}

func TestTrackerRecoversFromLoaderPanic(t *testing.T) {
	tr := NewTracker(func(path string, sceneIndex int) (*Mesh, error) {
		var accessors []int
		_ = accessors[sceneIndex]
		return &Mesh{}, nil
	})
	h := tr.Load("broken.glb", 99)
	waitDone(t, h)

	assert.Equal(t, StatusFailed, h.Status())
	assert.ErrorIs(t, h.Err(), ErrLoadPanic)
	assert.False(t, tr.IsAllDone())
}

func TestTrackerNilMeshFails(t *testing.T) {
	tr := NewTracker(func(path string, sceneIndex int) (*Mesh, error) {
		return nil, nil
	})
	h := tr.Load("empty.glb", 0)
	waitDone(t, h)

	assert.Equal(t, StatusFailed, h.Status())
	assert.ErrorIs(t, h.Err(), ErrNoMesh)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "queued", StatusQueued.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
