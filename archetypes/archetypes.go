package archetypes

import (
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.MainCamera,
		components.Name,
		components.Camera,
		components.OrbitRig,
		components.Transform,
		components.GlobalTransform,
	)
	CameraLight = newArchetype(
		tags.CameraLight,
		components.Name,
		components.SpotLight,
		components.Transform,
		components.GlobalTransform,
		components.Parent,
	)
	Level = newArchetype(
		tags.Level,
		components.Name,
		components.Transform,
		components.GlobalTransform,
	)
	SceneRoot = newArchetype(
		components.SceneRoot,
		components.Transform,
		components.GlobalTransform,
		components.Parent,
	)
	HintLabel = newArchetype(
		tags.HintLabel,
		components.Label,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
