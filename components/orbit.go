package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// OrbitRigData describes a camera orbiting a fixed target on a sphere.
// Radius and Target do not change after the rig is spawned.
type OrbitRigData struct {
	Radius float64    // Distance from Target
	Yaw    float64    // Azimuth in radians, unbounded
	Pitch  float64    // Elevation in radians, kept within [PitchMin, PitchMax]
	Speed  float64    // Radians per second per unit of input
	Target mgl64.Vec3 // Look-at point in world space

	PitchMin float64
	PitchMax float64
}

var OrbitRig = donburi.NewComponentType[OrbitRigData]()
