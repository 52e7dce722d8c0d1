package components

import "github.com/yohamta/donburi"

// NameData is a human-readable entity name used in logs.
type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()
