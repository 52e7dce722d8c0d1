package assets

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/pccase-viewer/logger"
	"go.uber.org/zap"
)

// Status is the load state of a Handle.
type Status int32

const (
	StatusQueued Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrLoadPanic = errors.New("loader panicked")
	ErrNoMesh    = errors.New("loader returned no mesh")
)

// LoadFunc decodes one scene of a model file.
type LoadFunc func(path string, sceneIndex int) (*Mesh, error)

// Handle refers to an asset that may still be loading. Mesh and Err are only
// meaningful once Status reports Loaded or Failed.
type Handle struct {
	Path       string
	SceneIndex int

	status atomic.Int32
	mesh   *Mesh
	err    error
	done   chan struct{}
}

func (h *Handle) Status() Status {
	return Status(h.status.Load())
}

// Mesh returns the loaded mesh, or nil while loading or after a failure.
func (h *Handle) Mesh() *Mesh {
	if h.Status() != StatusLoaded {
		return nil
	}
	return h.mesh
}

// Err returns the load error once the handle has failed.
func (h *Handle) Err() error {
	if h.Status() != StatusFailed {
		return nil
	}
	return h.err
}

// Done is closed when the handle reaches Loaded or Failed.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Tracker loads assets in the background and reports when all of them are
// ready. Each asset decodes on its own goroutine; callers only poll.
type Tracker struct {
	load LoadFunc

	mu      sync.Mutex
	handles []*Handle
}

// NewTracker creates a tracker. A nil load function uses LoadScene.
func NewTracker(load LoadFunc) *Tracker {
	if load == nil {
		load = LoadScene
	}
	return &Tracker{load: load}
}

// Load queues an asset and starts decoding it.
func (t *Tracker) Load(path string, sceneIndex int) *Handle {
	h := &Handle{Path: path, SceneIndex: sceneIndex, done: make(chan struct{})}

	t.mu.Lock()
	t.handles = append(t.handles, h)
	t.mu.Unlock()

	go t.run(h)
	return h
}

func (t *Tracker) run(h *Handle) {
	log := logger.Get().With(zap.String("path", h.Path), zap.Int("scene", h.SceneIndex))
	h.status.Store(int32(StatusLoading))
	start := time.Now()

	mesh, err := t.safeLoad(h)
	if err != nil {
		h.err = err
		h.status.Store(int32(StatusFailed))
		log.Error("asset failed to load", zap.Error(err))
		close(h.done)
		return
	}

	h.mesh = mesh
	h.status.Store(int32(StatusLoaded))
	log.Info("asset loaded",
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	close(h.done)
}

// safeLoad turns a panicking decoder or a nil mesh into a load error so a
// malformed file cannot take the viewer down.
func (t *Tracker) safeLoad(h *Handle) (mesh *Mesh, err error) {
	defer func() {
		if r := recover(); r != nil {
			mesh, err = nil, fmt.Errorf("%w: %v", ErrLoadPanic, r)
		}
	}()
	mesh, err = t.load(h.Path, h.SceneIndex)
	if err == nil && mesh == nil {
		err = ErrNoMesh
	}
	return mesh, err
}

// IsAllDone reports whether every queued asset has loaded. A failed asset
// keeps this false forever.
func (t *Tracker) IsAllDone() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, h := range t.handles {
		if h.Status() != StatusLoaded {
			return false
		}
	}
	return true
}

// Pending returns how many assets are not loaded yet, failed ones included.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, h := range t.handles {
		if h.Status() != StatusLoaded {
			n++
		}
	}
	return n
}
