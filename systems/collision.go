package systems

import (
	"github.com/automoto/icecube/collide"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every body by its velocity and stops it against
// level solids. Characters pass through each other.
func UpdateCollisions(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	proj := level.Projection
	dt := tickSeconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// World y is up, pixel y is down.
		dx := proj.Length(physics.Velocity.X * dt)
		dy := -proj.Length(physics.Velocity.Y * dt)

		hitX, hitY := collide.Move(obj.Object, dx, dy)
		if hitX {
			physics.Velocity.X = 0
		}
		if hitY {
			physics.Velocity.Y = 0
		}
		physics.Grounded = hitY && dy > 0
	})
}

// UpdateContactDamage knocks the player away from any enemy it touches.
// Contact is ignored while a knockback is already running.
func UpdateContactDamage(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		if ch.Controller == nil || ch.Controller.State().KnockbackRemaining > 0 {
			return
		}
		obj := components.Object.Get(e)

		check := obj.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
			if !collide.Overlaps(obj.Object, o) {
				continue
			}
			enemy, ok := o.Data.(*donburi.Entry)
			if !ok || !enemy.Valid() || enemy.HasComponent(components.Death) {
				continue
			}
			fromRight := o.X+o.W/2 > obj.X+obj.W/2
			ch.Controller.ApplyKnockback(fromRight, cfg.Combat.ContactKnockbackMul)
			return
		}
	})
}
