package systems

import (
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates forces and gravity into body velocities.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Dying entities freeze in place
		if e.HasComponent(components.Death) {
			return
		}
		integrate(components.Physics.Get(e), dt)
	})
}

func integrate(physics *components.PhysicsData, dt float64) {
	mass := cfg.Physics.Mass
	if mass <= 0 {
		mass = 1
	}
	physics.Velocity.X += physics.Force / mass * dt
	physics.Velocity.X = gamemath.ClampSpeed(physics.Velocity.X, cfg.Physics.MaxRunSpeed)
	physics.Force = 0

	physics.Velocity.Y -= cfg.Physics.Gravity * physics.GravityScale * dt
	if physics.Velocity.Y < -cfg.Physics.MaxFallSpeed {
		physics.Velocity.Y = -cfg.Physics.MaxFallSpeed
	}
}
