package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn math.Vec2 // respawn point, world units
	Room  string    // name of the last camera zone entered
	Axis  math.Vec2 // last move axis sent to the controller

	// CheckpointPending is set on entering a room and cleared once Spawn has
	// moved to the first grounded position inside it.
	CheckpointPending bool
}

var Player = donburi.NewComponentType[PlayerData]()
