package components

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/yohamta/donburi"
)

// LabelData is a static line of UI text anchored to the top-left corner.
// UI is built lazily by the HUD renderer.
type LabelData struct {
	Text   string
	Color  color.RGBA
	Margin int
	Size   float64
	UI     *ebitenui.UI
}

var Label = donburi.NewComponentType[LabelData]()
