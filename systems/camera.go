package systems

import (
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level, ok := getLevel(e)
	if !ok {
		return
	}
	target := collide.Centre(components.Object.Get(playerEntry).Object, level.Projection)
	physics := components.Physics.Get(playerEntry)

	camera.Position = camera.Follower.Advance(target, physics.Velocity.Y, tickSeconds())
}
