package character

import "math"

// DashVariant is one of the dash bursts selected from the input axes.
type DashVariant int

const (
	DashNone DashVariant = iota
	DashRegular
	DashUp
	DashDown
	DashUpDiagonal
	DashDownDiagonal
)

func (v DashVariant) String() string {
	switch v {
	case DashRegular:
		return "regular"
	case DashUp:
		return "up"
	case DashDown:
		return "down"
	case DashUpDiagonal:
		return "up-diagonal"
	case DashDownDiagonal:
		return "down-diagonal"
	}
	return "none"
}

// Axis thresholds for dash selection.
const (
	diagonalVertical   = 0.5
	straightVertical   = 0.4
	horizontalDeadzone = 0.1
)

// SelectDash picks the dash variant for the given axes. The first matching
// row wins; a downward diagonal on the ground becomes a regular dash.
func SelectDash(horizontal, vertical float64, grounded bool) DashVariant {
	sideways := math.Abs(horizontal) > horizontalDeadzone
	switch {
	case vertical > diagonalVertical && sideways:
		return DashUpDiagonal
	case vertical < -diagonalVertical && sideways:
		if grounded {
			return DashRegular
		}
		return DashDownDiagonal
	case vertical > straightVertical && !sideways:
		return DashUp
	case vertical < -straightVertical && !sideways:
		return DashDown
	}
	return DashRegular
}

// tryDash starts a dash when one is available and the cooldown has elapsed.
// Requests made while dashing or attacking are dropped.
func (c *Controller) tryDash(f *frame) {
	s := &c.state
	if s.Dashing || s.Attacking || s.DashesAvailable <= 0 || c.hasTask(TaskDashCooldown) {
		return
	}

	variant := SelectDash(s.Horizontal, s.Vertical, s.Grounded)
	p := c.params

	s.Dashing = true
	s.DashVariant = variant
	s.DashesAvailable = 0
	s.CanMove = false

	// A dash takes horizontal control from a pending wall jump.
	c.cancelKind(TaskWallJumpRelease)
	s.WallJumping = false

	c.preDashGravity = s.GravityScale
	switch variant {
	case DashUp, DashUpDiagonal:
		c.setGravity(f, p.UpDashGravityScale)
	default:
		c.setGravity(f, p.DashGravityScale)
	}

	facing := s.Facing()
	switch variant {
	case DashRegular:
		f.setVelocity(facing*p.DashingPower, 0)
	case DashUp:
		f.setVelocity(0, p.UpDashingPower)
	case DashDown:
		f.setVelocity(0, p.DownDashingPower)
	case DashUpDiagonal:
		f.setVelocity(facing*p.DashingPower, p.DiagonalDashingPower)
	case DashDownDiagonal:
		f.setVelocity(facing*p.DashingPower, p.DiagonalDownDashingPower)
	}

	c.schedule(TaskDash, p.DashingTime, func(f *frame) {
		c.endDash(f)
		c.schedule(TaskDashCooldown, p.DashingCooldown, func(*frame) {
			// Only the neutral dash chains.
			if variant == DashRegular {
				c.state.DashesAvailable = min(c.state.DashesAvailable+1, maxDashes)
			}
		})
	})
}

// endDash restores gravity and movement after the dash burst.
func (c *Controller) endDash(f *frame) {
	s := &c.state
	s.Dashing = false
	s.DashVariant = DashNone
	s.CanMove = true
	if f != nil {
		c.setGravity(f, c.preDashGravity)
		return
	}
	s.GravityScale = c.preDashGravity
	c.gravityDirty = true
}
