package systems

import (
	"testing"

	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/automoto/pccase-viewer/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// facingTriangle returns a triangle centred on center whose front face
// points toward eye.
func facingTriangle(center, eye mgl64.Vec3, size float64) []mgl64.Vec3 {
	d := eye.Sub(center).Normalize()
	u := gamemath.Up.Cross(d).Normalize()
	v := d.Cross(u)
	return []mgl64.Vec3{
		center.Add(u.Mul(size)),
		center.Add(v.Mul(size)),
		center.Sub(u.Mul(size)).Sub(v.Mul(size)),
	}
}

func viewerWithMesh(t *testing.T, positions []mgl64.Vec3) *ecs.ECS {
	t.Helper()
	e := newTestECS()
	factory.CreateCamera(e)
	mesh := &assets.Mesh{
		Positions: positions,
		Normals:   make([]mgl64.Vec3, len(positions)),
	}
	for i := range positions {
		mesh.Indices = append(mesh.Indices, uint32(i))
	}
	factory.CreateLevel(e, mesh)
	settle(e)
	return e
}

func cameraEye() mgl64.Vec3 {
	return gamemath.OrbitPosition(cfg.Orbit.Target, cfg.Orbit.Radius, cfg.Orbit.Yaw, cfg.Orbit.Pitch)
}

func TestBuildSceneTrianglesWithoutCamera(t *testing.T) {
	e := newTestECS()
	assert.Empty(t, BuildSceneTriangles(e, 1280, 720, nil))
}

func TestBuildSceneTrianglesProjectsFrontFace(t *testing.T) {
	tri := facingTriangle(cfg.Orbit.Target, cameraEye(), 50)
	e := viewerWithMesh(t, tri)

	out := BuildSceneTriangles(e, 1280, 720, nil)
	require.Len(t, out, 1)

	for _, v := range out[0].Vertices {
		assert.InDelta(t, 640, v.DstX, 200)
		assert.InDelta(t, 360, v.DstY, 200)
		assert.LessOrEqual(t, v.ColorR, float32(1))
		assert.Greater(t, v.ColorR, float32(0))
		assert.Equal(t, float32(1), v.ColorA)
	}
	assert.InDelta(t, cfg.Orbit.Radius, out[0].Depth, 60)
}

func TestBuildSceneTrianglesCullsBackFace(t *testing.T) {
	tri := facingTriangle(cfg.Orbit.Target, cameraEye(), 50)
	tri[1], tri[2] = tri[2], tri[1]
	e := viewerWithMesh(t, tri)

	assert.Empty(t, BuildSceneTriangles(e, 1280, 720, nil))
}

func TestBuildSceneTrianglesSortsBackToFront(t *testing.T) {
	eye := cameraEye()
	toEye := eye.Sub(cfg.Orbit.Target).Normalize()
	near := facingTriangle(cfg.Orbit.Target.Add(toEye.Mul(200)), eye, 20)
	far := facingTriangle(cfg.Orbit.Target, eye, 20)
	e := viewerWithMesh(t, append(near, far...))

	out := BuildSceneTriangles(e, 1280, 720, nil)
	require.Len(t, out, 2)
	assert.Greater(t, out[0].Depth, out[1].Depth)
}

func TestBuildSceneTrianglesLitByCameraLight(t *testing.T) {
	tri := facingTriangle(cfg.Orbit.Target, cameraEye(), 50)
	lit := viewerWithMesh(t, tri)

	dark := viewerWithMesh(t, tri)
	lightEntry, ok := components.SpotLight.First(dark.World)
	require.True(t, ok)
	components.SpotLight.Get(lightEntry).Intensity = 0

	litOut := BuildSceneTriangles(lit, 1280, 720, nil)
	darkOut := BuildSceneTriangles(dark, 1280, 720, nil)
	require.Len(t, litOut, 1)
	require.Len(t, darkOut, 1)
	assert.Greater(t, litOut[0].Vertices[0].ColorR, darkOut[0].Vertices[0].ColorR)
}
