package components

import "github.com/yohamta/donburi"

// CameraData holds the projection parameters of a 3D camera.
type CameraData struct {
	FieldOfView float64 // Vertical, radians
	Near        float64
	Far         float64
}

var Camera = donburi.NewComponentType[CameraData]()
