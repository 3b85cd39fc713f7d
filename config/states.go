package config

// StateID identifies a character state for animation and debugging.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Running
	Jumping
	Falling
	WallSlide
	Dashing
	Attacking
	Knockback
	Dead
)

// StateToName maps StateID to the label drawn by the debug overlay.
var StateToName = map[StateID]string{
	Idle:      "idle",
	Running:   "running",
	Jumping:   "jump",
	Falling:   "fall",
	WallSlide: "wall_slide",
	Dashing:   "dash",
	Attacking: "attack",
	Knockback: "knockback",
	Dead:      "dead",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "none"
}
