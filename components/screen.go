package components

import (
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/yohamta/donburi"
)

// ScreenData is the singleton top-level state. Transitions only move forward.
type ScreenData struct {
	Current     cfg.ScreenID
	Transitions int // Number of completed transitions
}

var Screen = donburi.NewComponentType[ScreenData]()
