package components

import (
	"github.com/automoto/pccase-viewer/assets"
	"github.com/yohamta/donburi"
)

// SceneRootData attaches a loaded model to an entity. The mesh is shared
// with the asset tracker and must not be mutated.
type SceneRootData struct {
	Mesh *assets.Mesh
}

var SceneRoot = donburi.NewComponentType[SceneRootData]()
