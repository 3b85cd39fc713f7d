// Package zone implements room bound triggers: volumes that hand a new bound
// rectangle to the follow camera when the player walks in.
package zone

import (
	"fmt"
	"strings"

	"github.com/automoto/icecube/camera"
	"github.com/yohamta/donburi/features/math"
)

// Mode selects what entering a zone does to the camera.
type Mode int

const (
	// ModeTransition eases the camera into the new room.
	ModeTransition Mode = iota
	// ModeSnap sets the bounds and jumps straight to the target.
	ModeSnap
	// ModeSetOnly replaces the bounds and lets normal following catch up.
	ModeSetOnly
)

func (m Mode) String() string {
	switch m {
	case ModeTransition:
		return "transition"
	case ModeSnap:
		return "snap"
	case ModeSetOnly:
		return "set"
	}
	return "unknown"
}

// ParseMode reads a mode as written in level files. An empty string is
// ModeTransition.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "transition":
		return ModeTransition, nil
	case "snap":
		return ModeSnap, nil
	case "set", "setonly":
		return ModeSetOnly, nil
	}
	return ModeTransition, fmt.Errorf("unknown zone mode %q", s)
}

// BoundsReceiver is the camera side of a zone.
type BoundsReceiver interface {
	SetBounds(lower, upper math.Vec2)
	TransitionToBounds(lower, upper math.Vec2, duration float64)
	SnapToTarget()
}

// BoundZone is one room. It is built with the level and never changes.
type BoundZone struct {
	Name string

	// Trigger is the volume that fires the zone.
	Trigger camera.Rect

	// Lower and Upper are the camera bounds handed over on entry.
	Lower math.Vec2
	Upper math.Vec2

	Mode Mode
	// Duration overrides the camera's room transition time when positive.
	Duration float64
}

// FromCollider returns a zone whose camera bounds are the trigger volume
// shrunk by padding on each side.
func FromCollider(name string, trigger camera.Rect, padding math.Vec2) BoundZone {
	return BoundZone{
		Name:    name,
		Trigger: trigger,
		Lower:   math.Vec2{X: trigger.Min.X + padding.X, Y: trigger.Min.Y + padding.Y},
		Upper:   math.Vec2{X: trigger.Max.X - padding.X, Y: trigger.Max.Y - padding.Y},
	}
}

// Enter pushes the zone's bounds into r.
func (z BoundZone) Enter(r BoundsReceiver) {
	switch z.Mode {
	case ModeSnap:
		r.SetBounds(z.Lower, z.Upper)
		r.SnapToTarget()
	case ModeSetOnly:
		r.SetBounds(z.Lower, z.Upper)
	default:
		r.TransitionToBounds(z.Lower, z.Upper, z.Duration)
	}
}

// Tracker fires each zone once per entry. A zone fires again only after the
// player has left it. Leaving a nested zone hands the camera back to the
// most recently entered zone still holding the player.
type Tracker struct {
	zones  []BoundZone
	inside []bool
	order  []int // entry sequence per zone
	seq    int
	active int // zone whose bounds the camera holds, -1 for none
}

// NewTracker returns a tracker over zones.
func NewTracker(zones []BoundZone) *Tracker {
	return &Tracker{
		zones:  zones,
		inside: make([]bool, len(zones)),
		order:  make([]int, len(zones)),
		active: -1,
	}
}

// Zones returns the tracked zones.
func (t *Tracker) Zones() []BoundZone {
	return t.zones
}

// Update checks the player position against every trigger, calls Enter on
// r for each zone entered since the last update and returns those zones.
func (t *Tracker) Update(player math.Vec2, r BoundsReceiver) []BoundZone {
	var entered []BoundZone
	for i, z := range t.zones {
		in := z.Trigger.Contains(player)
		if in && !t.inside[i] {
			z.Enter(r)
			entered = append(entered, z)
			t.seq++
			t.order[i] = t.seq
			t.active = i
		}
		t.inside[i] = in
	}

	if len(entered) == 0 && t.active >= 0 && !t.inside[t.active] {
		t.active = t.enclosing()
		if t.active >= 0 {
			z := t.zones[t.active]
			z.Enter(r)
			entered = append(entered, z)
		}
	}
	return entered
}

// enclosing returns the most recently entered zone the player is still in.
func (t *Tracker) enclosing() int {
	best := -1
	for i, in := range t.inside {
		if in && (best < 0 || t.order[i] > t.order[best]) {
			best = i
		}
	}
	return best
}

// Reset forgets which zones the player is in, so the zone under the player
// fires on the next update.
func (t *Tracker) Reset() {
	clear(t.inside)
	clear(t.order)
	t.seq = 0
	t.active = -1
}
