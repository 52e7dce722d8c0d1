package systems

import (
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbitRig applies orbit input to every rig and rewrites the camera
// transform. Must run after UpdateInput and UpdateClock and before
// AimCameraLight.
func UpdateOrbitRig(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	dt := GetOrCreateClock(e).Delta

	direction := gamemath.AxisDirection(
		input.Current[cfg.ActionOrbitIncrease],
		input.Current[cfg.ActionOrbitDecrease],
	)

	components.OrbitRig.Each(e.World, func(entry *donburi.Entry) {
		orbit := components.OrbitRig.Get(entry)
		orbit.Yaw = gamemath.IntegrateYaw(orbit.Yaw, direction, orbit.Speed, dt)
		applyOrbit(orbit, components.Transform.Get(entry))
	})
}

// SyncOrbitRigs places every rig's camera without reading input. Run once
// right after spawning so the first rendered frame has the right pose.
func SyncOrbitRigs(e *ecs.ECS) {
	components.OrbitRig.Each(e.World, func(entry *donburi.Entry) {
		applyOrbit(components.OrbitRig.Get(entry), components.Transform.Get(entry))
	})
}

func applyOrbit(orbit *components.OrbitRigData, transform *components.TransformData) {
	// No input moves pitch, but config can start it out of range.
	orbit.Pitch = gamemath.ClampPitch(orbit.Pitch, orbit.PitchMin, orbit.PitchMax)

	transform.Position = gamemath.OrbitPosition(orbit.Target, orbit.Radius, orbit.Yaw, orbit.Pitch)
	if rot, ok := gamemath.LookAt(transform.Position, orbit.Target, gamemath.Up); ok {
		transform.Rotation = rot
	}
}
