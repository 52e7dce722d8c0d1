package components

import "github.com/yohamta/donburi"

// ClockData stores the duration of the current tick.
type ClockData struct {
	Delta   float64 // Seconds
	Elapsed float64 // Seconds since the clock was created
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
