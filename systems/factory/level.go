package factory

import (
	"github.com/automoto/pccase-viewer/archetypes"
	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/components"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the "Level" entity at the origin with the loaded model
// as its child.
func CreateLevel(ecs *ecs.ECS, mesh *assets.Mesh) (level, scene *donburi.Entry) {
	level = archetypes.Level.Spawn(ecs)
	components.Name.SetValue(level, components.NameData{Name: "Level"})
	components.Transform.SetValue(level, components.NewTransform(mgl64.Vec3{}))
	components.GlobalTransform.SetValue(level, components.GlobalTransformData{Pose: gamemath.IdentityPose()})

	scene = archetypes.SceneRoot.Spawn(ecs)
	components.SceneRoot.SetValue(scene, components.SceneRootData{Mesh: mesh})
	components.Transform.SetValue(scene, components.NewTransform(mgl64.Vec3{}))
	components.GlobalTransform.SetValue(scene, components.GlobalTransformData{Pose: gamemath.IdentityPose()})
	components.Parent.SetValue(scene, components.ParentData{Entity: level.Entity()})

	return level, scene
}
