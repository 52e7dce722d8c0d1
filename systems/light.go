package systems

import (
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AimCameraLight turns every spotlight toward the orbit target of the first
// camera rig. The light's rotation is written in its parent's (the camera's)
// space. Reads world transforms, so PropagateTransforms must run between
// UpdateOrbitRig and this system.
func AimCameraLight(e *ecs.ECS) {
	cameraEntry, ok := components.OrbitRig.First(e.World)
	if !ok {
		return // no camera yet, nothing to aim at
	}
	orbit := components.OrbitRig.Get(cameraEntry)
	cameraWorld := components.GlobalTransform.Get(cameraEntry)

	components.SpotLight.Each(e.World, func(entry *donburi.Entry) {
		lightWorld := components.GlobalTransform.Get(entry)
		local := components.Transform.Get(entry)

		rot, ok := gamemath.AimLocalRotation(orbit.Target, lightWorld.Position, cameraWorld.Rotation, cfg.Light.AimEpsilon)
		if !ok {
			return // light sits on the target, keep the last rotation
		}
		local.Rotation = rot
	})
}
