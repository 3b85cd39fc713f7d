package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity by a landed hit and consumed by the
// combat system. Hits in the same tick accumulate.
type DamageEventData struct {
	Amount int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
