package components

import (
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's pose relative to its parent, or to the world
// when it has no Parent.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Pose returns the transform as a gamemath pose.
func (t *TransformData) Pose() gamemath.Pose {
	return gamemath.Pose{Position: t.Position, Rotation: t.Rotation}
}

// NewTransform returns an identity transform at position.
func NewTransform(position mgl64.Vec3) TransformData {
	return TransformData{Position: position, Rotation: mgl64.QuatIdent()}
}

// GlobalTransformData is the world-space pose derived from the local
// Transform and every ancestor. Only PropagateTransforms writes it.
type GlobalTransformData struct {
	gamemath.Pose
}

// ParentData links a child entity to its parent.
type ParentData struct {
	Entity donburi.Entity
}

var (
	Transform       = donburi.NewComponentType[TransformData]()
	GlobalTransform = donburi.NewComponentType[GlobalTransformData]()
	Parent          = donburi.NewComponentType[ParentData]()
)
