package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var fontSource *text.GoTextFaceSource

func loadFontSource() (*text.GoTextFaceSource, error) {
	if fontSource != nil {
		return fontSource, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	fontSource = src
	return src, nil
}

// NewHintLabel builds a transparent full-screen UI with a single line of text
// pinned to the top-left corner, margin pixels from the edges.
func NewHintLabel(label string, clr color.Color, size float64, margin int) (*ebitenui.UI, error) {
	src, err := loadFontSource()
	if err != nil {
		return nil, err
	}
	// Stored as text.Face interface for ebitenui compatibility
	var face text.Face = &text.GoTextFace{
		Source: src,
		Size:   size,
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Row container pinned to the top-left, padding provides the margin
	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(margin)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hint := widget.NewLabel(
		widget.LabelOpts.Text(label, &face, &widget.LabelColor{
			Idle: clr,
		}),
	)
	corner.AddChild(hint)
	rootContainer.AddChild(corner)

	return &ebitenui.UI{
		Container: rootContainer,
	}, nil
}
