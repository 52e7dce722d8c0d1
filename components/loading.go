package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LoadingData drives the loading screen text pulse.
type LoadingData struct {
	Pulse   *gween.Tween
	Alpha   float32
	FadeIn  bool
	Pending int // Assets not loaded yet, as of the last gate check
}

var Loading = donburi.NewComponentType[LoadingData]()
