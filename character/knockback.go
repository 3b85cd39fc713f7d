package character

// ApplyKnockback throws the character away from the hit. fromRight means the
// source is to the right, so the body is pushed left. A multiplier <= 0 counts
// as 1.
//
// Knockback preempts every running action: pending dash, attack and wall jump
// tasks are cancelled and their effects undone so nothing re-applies once
// control returns.
func (c *Controller) ApplyKnockback(fromRight bool, durationMultiplier float64) {
	if c.destroyed {
		return
	}
	if durationMultiplier <= 0 {
		durationMultiplier = 1
	}
	s := &c.state

	if s.Dashing {
		c.endDash(nil)
	}
	c.cancelAll()

	s.Attacking = false
	s.WallJumping = false
	s.WallSliding = false
	s.CanMove = false
	s.CanMoveHorizontal = true

	s.KnockFromRight = fromRight
	s.KnockbackRemaining = c.params.KnockbackDuration * durationMultiplier
	if s.KnockbackRemaining <= timerEpsilon {
		s.KnockbackRemaining = 0
		s.CanMove = true
	}
}

// knockbackTick applies the knockback velocity and counts the timer down.
// Presses made meanwhile are dropped; axis values are still recorded.
func (c *Controller) knockbackTick(f *frame, dt float64) {
	s := &c.state
	force := c.params.KnockbackForce
	x := force
	if s.KnockFromRight {
		x = -force
	}
	f.setVelocity(x, force)

	s.KnockbackRemaining -= dt
	if s.KnockbackRemaining <= timerEpsilon {
		s.KnockbackRemaining = 0
		s.CanMove = true
	}
}
