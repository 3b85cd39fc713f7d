package systems

import (
	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runThreshold is the input magnitude above which a grounded character runs.
const runThreshold = 0.01

func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		next := stateFromSignals(ch.LastCommand.Animation, physics.Velocity.Y, e.HasComponent(components.Death))
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
	})
}

// stateFromSignals picks the animation state. Actions outrank movement.
func stateFromSignals(sig character.AnimationSignals, verticalVelocity float64, dying bool) cfg.StateID {
	switch {
	case dying:
		return cfg.Dead
	case sig.Knockback:
		return cfg.Knockback
	case sig.Dashing:
		return cfg.Dashing
	case sig.Attacking:
		return cfg.Attacking
	case sig.WallSliding:
		return cfg.WallSlide
	case !sig.Grounded && verticalVelocity > 0:
		return cfg.Jumping
	case !sig.Grounded:
		return cfg.Falling
	case sig.Speed > runThreshold:
		return cfg.Running
	}
	return cfg.Idle
}
