package factory

import (
	"github.com/automoto/pccase-viewer/archetypes"
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbiting camera and its spotlight child. The
// camera's transform is left at identity; SyncOrbitRigs places it.
func CreateCamera(ecs *ecs.ECS) (camera, light *donburi.Entry) {
	camera = archetypes.Camera.Spawn(ecs)
	components.Name.SetValue(camera, components.NameData{Name: "Camera"})
	components.Camera.SetValue(camera, components.CameraData{
		FieldOfView: cfg.Render.FieldOfView,
		Near:        cfg.Render.Near,
		Far:         cfg.Render.Far,
	})
	components.OrbitRig.SetValue(camera, components.OrbitRigData{
		Radius:   gamemath.SanitizeRadius(cfg.Orbit.Radius, cfg.Orbit.MinRadius),
		Yaw:      cfg.Orbit.Yaw,
		Pitch:    cfg.Orbit.Pitch,
		Speed:    cfg.Orbit.Speed,
		Target:   cfg.Orbit.Target,
		PitchMin: cfg.Orbit.PitchMin,
		PitchMax: cfg.Orbit.PitchMax,
	})
	components.Transform.SetValue(camera, components.NewTransform(mgl64.Vec3{}))
	components.GlobalTransform.SetValue(camera, components.GlobalTransformData{Pose: gamemath.IdentityPose()})

	light = archetypes.CameraLight.Spawn(ecs)
	components.Name.SetValue(light, components.NameData{Name: "Camera Light"})
	components.SpotLight.SetValue(light, components.SpotLightData{
		Intensity:      cfg.Light.Intensity,
		Range:          cfg.Light.Range,
		InnerAngle:     cfg.Light.InnerAngle,
		OuterAngle:     cfg.Light.OuterAngle,
		ShadowsEnabled: cfg.Light.ShadowsEnabled,
	})
	components.Transform.SetValue(light, components.NewTransform(cfg.Light.Offset))
	components.GlobalTransform.SetValue(light, components.GlobalTransformData{Pose: gamemath.IdentityPose()})
	components.Parent.SetValue(light, components.ParentData{Entity: camera.Entity()})

	return camera, light
}
