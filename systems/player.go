package systems

import (
	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	"github.com/automoto/icecube/shared/leveldata"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this frame's input to the player controller and applies
// the resulting command. Must run after UpdateInput and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	dt := tickSeconds()

	var hits []character.DamageRequest
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		if ch.Controller == nil {
			return
		}
		player := components.Player.Get(e)

		events, axis := ActionEvents(input, player.Axis)
		player.Axis = axis
		ch.Events.Push(events...)

		hits = append(hits, advanceCharacter(e, ch, level.Projection, dt)...)
	})

	// Delivered after iteration since damage adds components to the targets.
	deliverHits(hits)
}

// UpdateEnemies advances enemy controllers. Enemies take no input; the
// controller still owns their gravity, deceleration and knockback.
func UpdateEnemies(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	dt := tickSeconds()

	var hits []character.DamageRequest
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		ch := components.Character.Get(e)
		if ch.Controller == nil {
			return
		}
		hits = append(hits, advanceCharacter(e, ch, level.Projection, dt)...)
	})
	deliverHits(hits)
}

func advanceCharacter(e *donburi.Entry, ch *components.CharacterData, proj leveldata.Projection, dt float64) []character.DamageRequest {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	sample := ch.Sampler.Sample(collide.Centre(obj.Object, proj), physics.Velocity)
	cmd := ch.Controller.Advance(ch.Events.Poll(), sample, dt)
	applyCommand(physics, cmd)

	ch.LastSample = sample
	ch.LastCommand = cmd
	return cmd.Hits
}

// applyCommand hands a controller command to the body.
func applyCommand(physics *components.PhysicsData, cmd character.MotionCommand) {
	physics.Force += cmd.HorizontalForce
	if cmd.OverrideVelocity {
		physics.Velocity = cmd.Velocity
	}
	if cmd.SetGravity {
		physics.GravityScale = cmd.GravityScale
	}
}

func deliverHits(hits []character.DamageRequest) {
	for _, hit := range hits {
		if hit.Target != nil {
			hit.Target.TakeDamage(hit.Amount)
		}
	}
}
