package gamemath

import "github.com/go-gl/mathgl/mgl64"

// AimLocalRotation computes the local rotation, relative to a parent with
// world rotation parentWorld, that points a child's -Z axis from
// childWorldPos toward target.
//
// ok is false when the child sits on the target (squared distance <= epsilon);
// the caller must keep its previous rotation in that case.
func AimLocalRotation(target, childWorldPos mgl64.Vec3, parentWorld mgl64.Quat, epsilon float64) (mgl64.Quat, bool) {
	dir := target.Sub(childWorldPos)
	if dir.Dot(dir) <= epsilon {
		return mgl64.QuatIdent(), false
	}
	world := mgl64.QuatBetweenVectors(Forward, dir.Normalize())
	return parentWorld.Inverse().Mul(world).Normalize(), true
}
