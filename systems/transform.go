package systems

import (
	"sort"

	"github.com/automoto/pccase-viewer/components"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PropagateTransforms recomputes every GlobalTransform from the local
// Transforms. Roots are visited first, then their children depth-first, each
// level in entity order. Entities whose parent no longer exists are treated
// as roots.
func PropagateTransforms(e *ecs.ECS) {
	var roots []donburi.Entity
	children := map[donburi.Entity][]donburi.Entity{}

	components.Transform.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Parent) {
			parent := components.Parent.Get(entry).Entity
			if e.World.Valid(parent) && e.World.Entry(parent).HasComponent(components.Transform) {
				children[parent] = append(children[parent], entry.Entity())
				return
			}
		}
		roots = append(roots, entry.Entity())
	})

	sortEntities(roots)
	for _, list := range children {
		sortEntities(list)
	}

	visited := make(map[donburi.Entity]bool, len(roots))
	for _, root := range roots {
		propagate(e.World, root, gamemath.IdentityPose(), children, visited)
	}
}

func propagate(w donburi.World, entity donburi.Entity, parent gamemath.Pose, children map[donburi.Entity][]donburi.Entity, visited map[donburi.Entity]bool) {
	if visited[entity] {
		return
	}
	visited[entity] = true

	entry := w.Entry(entity)
	world := gamemath.Compose(parent, components.Transform.Get(entry).Pose())
	if entry.HasComponent(components.GlobalTransform) {
		components.GlobalTransform.Get(entry).Pose = world
	}

	for _, child := range children[entity] {
		propagate(w, child, world, children, visited)
	}
}

func sortEntities(list []donburi.Entity) {
	sort.Slice(list, func(i, j int) bool { return list[i].Id() < list[j].Id() })
}
