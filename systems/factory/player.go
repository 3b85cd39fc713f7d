package factory

import (
	"log"

	"github.com/automoto/icecube/archetypes"
	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on spawn (world units). Swings hit
// enemies.
func CreatePlayer(ecs *ecs.ECS, spawn math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	spawnCharacter(ecs, player, spawn, "harold", tags.ResolvPlayer, tags.ResolvEnemy)

	components.Player.SetValue(player, components.PlayerData{
		Spawn: spawn,
	})

	return player
}

// spawnCharacter sets up the collision body, physics and controller shared
// by players and enemies. A preset that fails validation leaves the
// character without a controller.
func spawnCharacter(ecs *ecs.ECS, e *donburi.Entry, pos math.Vec2, archetype, bodyTag, targetTag string) {
	levelEntry, _ := components.Level.First(ecs.World)
	spaceEntry, _ := components.Space.First(ecs.World)
	level := components.Level.Get(levelEntry)
	space := components.Space.Get(spaceEntry)
	proj := level.Projection

	body := newBody(proj.Length(cfg.Probe.BodyWidth), proj.Length(cfg.Probe.BodyHeight), bodyTag)
	body.Data = e
	space.Add(body)
	collide.Place(body, proj, pos)
	components.Object.SetValue(e, components.ObjectData{Object: body})

	query := collide.NewQuery(space, proj, targetTag)
	query.Resolve = ResolveTarget

	params := cfg.Archetypes[archetype]
	data := components.CharacterData{
		Events:    &character.EventQueue{},
		Sampler:   character.Sampler{Query: query, Probe: cfg.Probe},
		Archetype: archetype,
	}
	ctrl, err := character.New(params, &cfg.Attack, query)
	if err != nil {
		log.Printf("Warning: character %q disabled: %v", archetype, err)
	} else {
		data.Controller = ctrl
	}
	components.Character.SetValue(e, data)

	gravity := 1.0
	if params != nil {
		gravity = params.BaseGravityScale
	}
	components.Physics.SetValue(e, components.PhysicsData{
		GravityScale: gravity,
		Width:        cfg.Probe.BodyWidth,
		Height:       cfg.Probe.BodyHeight,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
}
