// Package camera implements a follow camera for a side-scrolling target:
// per-axis critically damped follow, horizontal look-ahead, clamping to a
// room rectangle and eased room transitions.
//
// Coordinates are world units, y-up. The camera position is the centre of the
// visible area.
package camera

import (
	stdmath "math"

	"github.com/automoto/icecube/config"
	"github.com/automoto/icecube/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// decayEpsilon absorbs the rounding left by summing decay steps.
const decayEpsilon = 1e-9

// Follower is the follow controller for one camera.
type Follower struct {
	cfg        config.CameraConfig
	halfWidth  float64
	halfHeight float64

	position math.Vec2
	velocity math.Vec2 // smoothing state, per axis

	target      math.Vec2
	hasTarget   bool
	prevTargetX float64
	wasFalling  bool

	lookAheadDir    float64
	lookAheadTarget float64
	lookAhead       float64
	lookAheadVel    float64

	lower math.Vec2
	upper math.Vec2

	transition *transition
}

// NewFollower returns a camera showing halfWidth by halfHeight world units on
// each side of its centre. It starts bounded by the manual bounds when the
// config asks for them and is effectively unbounded otherwise.
func NewFollower(cfg config.CameraConfig, halfWidth, halfHeight float64) *Follower {
	f := &Follower{
		cfg:        cfg,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
	if cfg.UseManualBounds {
		f.SetBounds(cfg.ManualLowerBounds, cfg.ManualUpperBounds)
	} else {
		e := f.unbounded()
		f.SetBounds(math.Vec2{X: -e, Y: -e}, math.Vec2{X: e, Y: e})
	}
	return f
}

// SetTarget points the camera at a new target without moving it. The next
// Advance measures look-ahead motion from pos.
func (f *Follower) SetTarget(pos math.Vec2) {
	f.target = pos
	f.hasTarget = true
	f.prevTargetX = pos.X
}

// Advance follows the target for one tick and returns the camera position.
// While a room transition runs the transition owns the position.
func (f *Follower) Advance(target math.Vec2, targetVerticalVelocity, dt float64) math.Vec2 {
	if !f.hasTarget {
		f.SetTarget(target)
	}
	dx := target.X - f.prevTargetX
	f.prevTargetX = target.X
	f.target = target

	if f.transition != nil {
		f.stepTransition(dt)
		return f.position
	}
	if dt <= 0 {
		return f.position
	}

	f.updateLookAhead(dx, dt)

	goal := f.focusPoint()
	goal.X += f.lookAhead

	falling := targetVerticalVelocity < f.cfg.FallingVelocityThreshold
	verticalTime := f.cfg.VerticalSmoothTime
	if falling && !f.wasFalling {
		verticalTime = f.cfg.FallingSmoothTime
	}
	f.wasFalling = falling

	inf := stdmath.Inf(1)
	next := math.Vec2{
		X: gamemath.SmoothDamp(f.position.X, goal.X, &f.velocity.X, f.cfg.HorizontalSmoothTime, inf, dt),
		Y: gamemath.SmoothDamp(f.position.Y, goal.Y, &f.velocity.Y, verticalTime, inf, dt),
	}
	f.position = f.clamp(next)
	return f.position
}

// updateLookAhead pushes the look-ahead toward the direction of travel. When
// the target stands still the look-ahead target decays toward zero.
func (f *Follower) updateLookAhead(dx, dt float64) {
	dir := gamemath.Sign(dx)
	if dir != 0 {
		f.lookAheadDir = dir
		f.lookAheadTarget = dir * f.cfg.LookAheadDistance
	} else {
		f.lookAheadTarget = gamemath.MoveTowards(f.lookAheadTarget, 0, f.cfg.LookAheadDecayRate*dt)
		if stdmath.Abs(f.lookAheadTarget) <= decayEpsilon {
			f.lookAheadTarget = 0
		}
	}
	f.lookAhead = gamemath.SmoothDamp(f.lookAhead, f.lookAheadTarget, &f.lookAheadVel,
		f.cfg.LookAheadSmoothTime, stdmath.Inf(1), dt)
}

func (f *Follower) focusPoint() math.Vec2 {
	return math.Vec2{X: f.target.X, Y: f.target.Y + f.cfg.VerticalOffset}
}

// SnapToTarget jumps to the clamped target position and drops all smoothing
// and look-ahead state. Used for teleports and respawns. A running
// transition is abandoned.
func (f *Follower) SnapToTarget() {
	if !f.hasTarget {
		return
	}
	f.transition = nil
	f.position = f.clamp(f.focusPoint())
	f.velocity = math.Vec2{}
	f.lookAheadDir = 0
	f.lookAhead = 0
	f.lookAheadTarget = 0
	f.lookAheadVel = 0
}

// FocusOnTarget recentres on the target but keeps the look-ahead. It does
// nothing during a transition.
func (f *Follower) FocusOnTarget() {
	if !f.hasTarget || f.transition != nil {
		return
	}
	f.position = f.clamp(f.focusPoint())
	f.velocity = math.Vec2{}
}

// Position returns the camera centre.
func (f *Follower) Position() math.Vec2 {
	return f.position
}

// LookAhead returns the current horizontal look-ahead offset and its target.
func (f *Follower) LookAhead() (current, target float64) {
	return f.lookAhead, f.lookAheadTarget
}

// HalfExtents returns the visible half width and half height.
func (f *Follower) HalfExtents() (halfWidth, halfHeight float64) {
	return f.halfWidth, f.halfHeight
}
