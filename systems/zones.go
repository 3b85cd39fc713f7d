package systems

import (
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundZones hands the camera the bounds of every room the player
// entered this tick. The first grounded position in a new room becomes the
// respawn point and is saved.
func UpdateBoundZones(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok || level.Zones == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	pos := collide.Centre(components.Object.Get(playerEntry).Object, level.Projection)

	if entered := level.Zones.Update(pos, cam.Follower); len(entered) > 0 {
		player.Room = entered[len(entered)-1].Name
		player.CheckpointPending = true
	}

	if player.CheckpointPending && physics.Grounded {
		player.CheckpointPending = false
		player.Spawn = pos
		_ = SaveGameProgress(&SaveData{
			Level:  level.Path,
			Room:   player.Room,
			SpawnX: pos.X,
			SpawnY: pos.Y,
		})
	}
}
