package assets

import (
	"math"

	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a triangle soup in model space, already flattened through the
// node hierarchy of the scene it came from.
type Mesh struct {
	Name      string
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3 // One per position
	Indices   []uint32     // Three per triangle
	Min, Max  mgl64.Vec3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() mgl64.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

func (m *Mesh) computeBounds() {
	if len(m.Positions) == 0 {
		return
	}
	m.Min = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	m.Max = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range m.Positions {
		for i := 0; i < 3; i++ {
			m.Min[i] = math.Min(m.Min[i], p[i])
			m.Max[i] = math.Max(m.Max[i], p[i])
		}
	}
}

// LevelAssets are the assets the viewer needs before it can leave the
// loading screen.
type LevelAssets struct {
	PcCase *Handle
}

// LoadLevelAssets queues every level asset on the tracker.
func LoadLevelAssets(t *Tracker) *LevelAssets {
	return &LevelAssets{
		PcCase: t.Load(cfg.Asset.ModelPath, cfg.Asset.SceneIndex),
	}
}
