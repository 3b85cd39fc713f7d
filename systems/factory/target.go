package factory

import (
	"github.com/automoto/icecube/character"
	"github.com/automoto/icecube/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// entityTarget turns a landed swing into a DamageEvent on the entity.
type entityTarget struct {
	entry *donburi.Entry
}

func (t entityTarget) TakeDamage(amount int) {
	e := t.entry
	if !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	if components.Health.Get(e).Current <= 0 {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// ResolveTarget returns the damage target behind a collision object. Only
// entities with health can be hit.
func ResolveTarget(obj *resolv.Object) (character.DamageTarget, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Health) {
		return nil, false
	}
	return character.AsDamageTarget(entityTarget{entry: entry})
}
