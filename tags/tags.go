package tags

import "github.com/yohamta/donburi"

var (
	MainCamera  = donburi.NewTag().SetName("MainCamera")
	CameraLight = donburi.NewTag().SetName("CameraLight")
	Level       = donburi.NewTag().SetName("Level")
	HintLabel   = donburi.NewTag().SetName("HintLabel")
)
