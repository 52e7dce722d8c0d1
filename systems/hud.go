package systems

import (
	"github.com/automoto/pccase-viewer/components"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/automoto/pccase-viewer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHUD lets the label UIs process layout and input.
func UpdateHUD(e *ecs.ECS) {
	components.Label.Each(e.World, func(entry *donburi.Entry) {
		if label := components.Label.Get(entry); label.UI != nil {
			label.UI.Update()
		}
	})
}

// DrawHUD renders every label on top of the scene, building its UI on first use.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	components.Label.Each(e.World, func(entry *donburi.Entry) {
		label := components.Label.Get(entry)
		if label.UI == nil {
			built, err := ui.NewHintLabel(label.Text, label.Color, label.Size, label.Margin)
			if err != nil {
				logger.Get().Error("build label", zap.String("text", label.Text), zap.Error(err))
				return
			}
			label.UI = built
		}
		label.UI.Draw(screen)
	})
}
