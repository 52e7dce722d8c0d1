package factory

import (
	"github.com/automoto/pccase-viewer/archetypes"
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHintLabel(ecs *ecs.ECS) *donburi.Entry {
	label := archetypes.HintLabel.Spawn(ecs)
	components.Label.SetValue(label, components.LabelData{
		Text:   cfg.UI.HintText,
		Color:  cfg.UI.HintColor,
		Margin: cfg.UI.HintMargin,
		Size:   cfg.UI.HintSize,
	})
	return label
}
