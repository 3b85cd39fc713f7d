package components

import (
	"github.com/automoto/icecube/config"
	"github.com/yohamta/donburi"
)

// StateData is the animation state derived from the controller's signals.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
