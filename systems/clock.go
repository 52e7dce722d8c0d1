package systems

import (
	"github.com/automoto/pccase-viewer/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock records the length of this tick. ebiten calls Update at a
// fixed rate, so a tick lasts 1/TPS seconds.
func UpdateClock(e *ecs.ECS) {
	AdvanceClock(e, 1.0/float64(ebiten.TPS()))
}

// AdvanceClock sets the current tick duration to dt seconds.
func AdvanceClock(e *ecs.ECS, dt float64) {
	clock := GetOrCreateClock(e)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
