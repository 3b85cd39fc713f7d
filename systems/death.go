package systems

import (
	"github.com/automoto/icecube/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDeaths(ecs *ecs.ECS) {
	dt := tickSeconds()

	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})
	for _, e := range done {
		removeEntity(ecs, e)
	}
}

// removeEntity removes e from the world and its collision object from the
// space.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
