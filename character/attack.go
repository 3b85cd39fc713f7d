package character

import "github.com/yohamta/donburi/features/math"

// tryAttack enters the two phase swing: movement is frozen through the windup,
// the hit query runs once, then movement stays frozen through recovery.
func (c *Controller) tryAttack() {
	s := &c.state
	if s.Attacking || s.Dashing {
		return
	}
	s.Attacking = true
	s.CanMove = false

	c.cancelKind(TaskWallJumpRelease)
	s.WallJumping = false

	c.schedule(TaskAttackWindup, c.attack.Windup, func(f *frame) {
		f.cmd.Hits = append(f.cmd.Hits, c.swing(f.sample.Position)...)
		c.schedule(TaskAttackRecovery, c.attack.Recovery, func(*frame) {
			c.state.Attacking = false
			c.state.CanMove = true
		})
	})
}

// AttackPoint returns the centre of the hit circle for a body at position.
func (c *Controller) AttackPoint(position math.Vec2) math.Vec2 {
	return math.Vec2{
		X: position.X + c.state.Facing()*c.attack.OffsetX,
		Y: position.Y + c.attack.OffsetY,
	}
}

// swing runs the hit query and queues damage for every target found.
func (c *Controller) swing(position math.Vec2) []DamageRequest {
	if c.targets == nil {
		return nil
	}
	found := c.targets.OverlapCircle(c.AttackPoint(position), c.attack.Range)
	if len(found) == 0 {
		return nil
	}
	hits := make([]DamageRequest, 0, len(found))
	for _, t := range found {
		hits = append(hits, DamageRequest{Target: t, Amount: c.attack.Damage})
	}
	return hits
}
