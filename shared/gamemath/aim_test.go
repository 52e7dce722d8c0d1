package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAimLocalRotationPointsAtTarget(t *testing.T) {
	target := mgl64.Vec3{0, 200, 0}
	eye := OrbitPosition(target, 900, 0.7, 0.4)
	camRot, ok := LookAt(eye, target, Up)
	require.True(t, ok)
	camera := Pose{Position: eye, Rotation: camRot}

	lightLocal := Pose{Position: mgl64.Vec3{0, 50, 0}, Rotation: mgl64.QuatIdent()}
	lightWorldPos := Compose(camera, lightLocal).Position

	local, ok := AimLocalRotation(target, lightWorldPos, camRot, 1e-4)
	require.True(t, ok)

	lightLocal.Rotation = local
	world := Compose(camera, lightLocal)
	want := target.Sub(world.Position).Normalize()
	assertVecNear(t, want, world.Forward(), 1e-9)
}

func TestAimLocalRotationGuard(t *testing.T) {
	target := mgl64.Vec3{0, 200, 0}

	_, ok := AimLocalRotation(target, target, mgl64.QuatIdent(), 1e-4)
	assert.False(t, ok)

	// Within epsilon.
	_, ok = AimLocalRotation(target, target.Add(mgl64.Vec3{0.005, 0, 0}), mgl64.QuatIdent(), 1e-4)
	assert.False(t, ok)

	_, ok = AimLocalRotation(target, target.Add(mgl64.Vec3{0.1, 0, 0}), mgl64.QuatIdent(), 1e-4)
	assert.True(t, ok)
}

func TestAimLocalRotationOppositeForward(t *testing.T) {
	// Target straight behind the reference forward axis.
	local, ok := AimLocalRotation(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.QuatIdent(), 1e-4)
	require.True(t, ok)
	got := local.Rotate(Forward)
	assertVecNear(t, mgl64.Vec3{0, 0, 1}, got, 1e-9)
	assert.False(t, math.IsNaN(local.W))
}
