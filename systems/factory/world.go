package factory

import (
	"io/fs"

	"github.com/automoto/icecube/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Collision space cell size in pixels.
const spaceCellSize = 16

// CreateWorld loads the level at path and spawns the collision space, the
// level solids, the player, the enemies and the camera. It returns the
// player entry.
func CreateWorld(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	levelEntry, err := CreateLevel(ecs, fsys, path)
	if err != nil {
		return nil, err
	}
	level := components.Level.Get(levelEntry)

	CreateSpace(ecs,
		level.Data.MapWidth,
		level.Data.MapHeight,
		spaceCellSize, spaceCellSize,
	)
	CreateLevelSolids(ecs, level)

	spawn := SpawnPosition(level)
	player := CreatePlayer(ecs, spawn)

	for _, es := range level.Data.Enemies {
		x, y := level.Projection.ToWorld(es.X, es.Y)
		CreateEnemy(ecs, es.Name, math.Vec2{X: x, Y: y}, es.Archetype, es.Health)
	}

	CreateCamera(ecs, spawn)
	return player, nil
}
