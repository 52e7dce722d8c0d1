package components

import "github.com/yohamta/donburi"

// SpotLightData is a cone light shining along the entity's -Z axis.
type SpotLightData struct {
	Intensity      float64
	Range          float64
	InnerAngle     float64 // Radians
	OuterAngle     float64 // Radians
	ShadowsEnabled bool
}

var SpotLight = donburi.NewComponentType[SpotLightData]()
