package main

import (
	"testing"

	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/scenes"
	"github.com/stretchr/testify/assert"
)

func TestNewGameStartsViewer(t *testing.T) {
	tracker := assets.NewTracker(func(string, int) (*assets.Mesh, error) {
		return &assets.Mesh{}, nil
	})
	g := NewGame(tracker)

	assert.IsType(t, &scenes.ViewerScene{}, g.scene)

	w, h := g.Layout(1, 1)
	assert.Equal(t, config.C.Width, w)
	assert.Equal(t, config.C.Height, h)
}
