package components

import (
	"github.com/automoto/icecube/character"
	"github.com/yohamta/donburi"
)

// CharacterData attaches an action state machine to an entity. Characters
// whose tuning failed validation are spawned without it and stay inert.
type CharacterData struct {
	Controller *character.Controller
	Events     *character.EventQueue
	Sampler    character.Sampler
	Archetype  string

	// LastSample and LastCommand are kept for rendering and debugging.
	LastSample  character.PhysicsSample
	LastCommand character.MotionCommand
}

var Character = donburi.NewComponentType[CharacterData]()
