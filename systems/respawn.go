package systems

import (
	"log"

	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/systems/factory"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateRespawn returns the player to its respawn point when it falls below
// the death plane or the respawn action is pressed. The new game action
// clears saved progress and starts over from the level spawn.
func UpdateRespawn(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	requested := GetAction(input, cfg.ActionRespawn).JustPressed

	if GetAction(input, cfg.ActionNewGame).JustPressed {
		startNewGame(ecs, level)
		return
	}

	var respawn []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos := collide.Centre(components.Object.Get(e).Object, level.Projection)
		if requested || pos.Y < cfg.Physics.DeathPlaneY {
			respawn = append(respawn, e)
		}
	})
	for _, e := range respawn {
		RespawnPlayer(ecs, e)
	}
}

// RespawnPlayer resets the controller, moves the body to the respawn point
// and snaps the camera onto it.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	ch := components.Character.Get(e)
	physics := components.Physics.Get(e)

	ch.Events.Poll()
	if ch.Controller != nil {
		ch.Controller.Reset()
		physics.GravityScale = ch.Controller.Params().BaseGravityScale
	}
	// A held direction is sent again on the next tick.
	player.Axis = math.Vec2{}

	physics.Velocity = math.Vec2{}
	physics.Force = 0
	collide.Place(components.Object.Get(e).Object, level.Projection, player.Spawn)

	// The room under the spawn point fires again.
	level.Zones.Reset()

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		cam := components.Camera.Get(cameraEntry)
		cam.Follower.SetTarget(player.Spawn)
		cam.Follower.SnapToTarget()
		cam.Position = cam.Follower.Position()
	}
}

// startNewGame forgets saved progress and respawns the player at the first
// spawn point of the level.
func startNewGame(ecs *ecs.ECS, level *components.LevelData) {
	if err := ClearGameProgress(); err != nil {
		log.Printf("Warning: new game keeps old progress: %v", err)
	}
	spawn := factory.SpawnPosition(level)

	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})
	for _, e := range players {
		player := components.Player.Get(e)
		player.Spawn = spawn
		player.Room = ""
		player.CheckpointPending = false
		RespawnPlayer(ecs, e)
	}
}
