package systems

import (
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/automoto/icecube/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage, keeps health values within their valid
// range and starts the death sequence at zero health.
func UpdateCombat(ecs *ecs.ECS) {
	// Collect first; removing components while iterating moves entries
	// between archetypes.
	var damaged []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		damaged = append(damaged, e)
	}
	for _, e := range damaged {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount

			if e.HasComponent(tags.Enemy) {
				showHealthBar(e)
			}
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	var expired []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		donburi.Remove[components.HealthBarData](e, components.HealthBar)
	}

	var dying []*donburi.Entry
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	})
	for _, e := range dying {
		startDeathSequence(e)
	}
}

func showHealthBar(e *donburi.Entry) {
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarFrames
		return
	}
	donburi.Add(e, components.HealthBar, &components.HealthBarData{
		TimeToLive: cfg.Combat.HealthBarFrames,
	})
}

// startDeathSequence tears down the controller so none of its pending
// actions fire, and freezes the body until UpdateDeaths removes it.
func startDeathSequence(e *donburi.Entry) {
	if e.HasComponent(components.Character) {
		if ctrl := components.Character.Get(e).Controller; ctrl != nil {
			ctrl.Destroy()
		}
	}
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.Velocity.X = 0
		physics.Velocity.Y = 0
		physics.Force = 0
	}
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathTime})
}
