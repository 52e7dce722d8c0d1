package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Pose is a rigid transform: rotation followed by translation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// Compose returns the world pose of a child whose local pose is expressed in
// the parent's space.
func Compose(parent, local Pose) Pose {
	return Pose{
		Position: parent.Position.Add(parent.Rotation.Rotate(local.Position)),
		Rotation: parent.Rotation.Mul(local.Rotation).Normalize(),
	}
}

// Apply transforms a point from the pose's local space into its parent space.
func (p Pose) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.Rotation.Rotate(v))
}

// Forward returns the pose's -Z axis in parent space.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(Forward)
}

// Mat4 returns the pose as a 4x4 model matrix.
func (p Pose) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).Mul4(p.Rotation.Mat4())
}

// ViewMat4 returns the inverse of the pose, for use as a view matrix.
func (p Pose) ViewMat4() mgl64.Mat4 {
	inv := p.Rotation.Inverse()
	t := inv.Rotate(p.Position.Mul(-1))
	return mgl64.Translate3D(t.X(), t.Y(), t.Z()).Mul4(inv.Mat4())
}
