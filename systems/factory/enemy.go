package factory

import (
	"github.com/automoto/icecube/archetypes"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy centred on pos (world units). health <= 0
// uses the configured default.
func CreateEnemy(ecs *ecs.ECS, name string, pos math.Vec2, archetype string, health int) *donburi.Entry {
	if _, exists := cfg.Archetypes[archetype]; !exists {
		archetype = "heavy"
	}
	if health <= 0 {
		health = cfg.Combat.EnemyHealth
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	// Enemies never swing, so their query has no target tag.
	spawnCharacter(ecs, enemy, pos, archetype, tags.ResolvEnemy, "")

	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:      name,
		Archetype: archetype,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	return enemy
}

func newBody(w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, w, h, "character", tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
