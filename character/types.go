// Package character implements the per-tick movement and action state
// machine of a platformer character: jumping, wall slide and wall jump, the
// dash variants, the melee swing and knockback.
//
// The controller never touches a physics engine directly. Each tick it reads a
// PhysicsSample and the input events delivered since the previous tick, and
// returns a MotionCommand for the caller to apply. World coordinates are y-up.
package character

import "github.com/yohamta/donburi/features/math"

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventMoveAxis EventKind = iota
	EventJumpPressed
	EventJumpReleased
	EventDashPressed
	EventAttackPressed
)

func (k EventKind) String() string {
	switch k {
	case EventMoveAxis:
		return "move"
	case EventJumpPressed:
		return "jump-pressed"
	case EventJumpReleased:
		return "jump-released"
	case EventDashPressed:
		return "dash"
	case EventAttackPressed:
		return "attack"
	}
	return "unknown"
}

// InputEvent is one input edge or axis change. X and Y are only meaningful
// for EventMoveAxis.
type InputEvent struct {
	Kind EventKind
	X, Y float64
}

// MoveAxis returns an axis change event.
func MoveAxis(x, y float64) InputEvent {
	return InputEvent{Kind: EventMoveAxis, X: x, Y: y}
}

// Press returns an event of the given kind with no payload.
func Press(kind EventKind) InputEvent {
	return InputEvent{Kind: kind}
}

// InputSource delivers the events accumulated since the last poll. Polling
// and event driven devices both fit as long as each edge is reported once.
type InputSource interface {
	Poll() []InputEvent
}

// EventQueue is an InputSource fed by pushing events. Poll drains it.
type EventQueue struct {
	events []InputEvent
}

// Push appends events to the queue.
func (q *EventQueue) Push(events ...InputEvent) {
	q.events = append(q.events, events...)
}

// Poll returns the queued events and empties the queue.
func (q *EventQueue) Poll() []InputEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// PhysicsSample is the physics state read before a tick.
type PhysicsSample struct {
	Grounded          bool
	TouchingLeftWall  bool
	TouchingRightWall bool
	Position          math.Vec2 // body centre
	Velocity          math.Vec2
}

// DamageTarget is anything a swing can hurt. TakeDamage must be a no-op once
// the target is already at zero health.
type DamageTarget interface {
	TakeDamage(amount int)
}

// TargetQuery finds damage targets overlapping a circle. A miss returns an
// empty slice.
type TargetQuery interface {
	OverlapCircle(center math.Vec2, radius float64) []DamageTarget
}

// AsDamageTarget returns v as a DamageTarget if it has that capability.
func AsDamageTarget(v any) (DamageTarget, bool) {
	t, ok := v.(DamageTarget)
	return t, ok
}

// DamageRequest asks the caller to deliver damage to a target.
type DamageRequest struct {
	Target DamageTarget
	Amount int
}

// AnimationSignals drive the animation graph.
type AnimationSignals struct {
	Speed       float64 // absolute horizontal input
	Attacking   bool
	Dashing     bool
	WallSliding bool
	Grounded    bool
	Knockback   bool
}

// MotionCommand is the output of one tick.
type MotionCommand struct {
	// HorizontalForce is added to the body along +x. Zero while another
	// action owns horizontal control.
	HorizontalForce float64

	// Velocity replaces the body velocity when OverrideVelocity is set.
	Velocity         math.Vec2
	OverrideVelocity bool

	// GravityScale replaces the body gravity scale when SetGravity is set.
	GravityScale float64
	SetGravity   bool

	FacingFlipped bool
	FacingRight   bool

	Animation AnimationSignals

	// Hits lists the damage produced by a swing that landed this tick.
	Hits []DamageRequest
}
