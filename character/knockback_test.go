package character

import (
	"testing"

	"github.com/automoto/icecube/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestKnockbackOverridesInput(t *testing.T) {
	c := newTestController(t, nil)
	p := config.Harold
	c.Advance(nil, grounded, tick)

	c.ApplyKnockback(true, 1)
	want := math.Vec2{X: -p.KnockbackForce, Y: p.KnockbackForce}

	presses := []InputEvent{
		Press(EventJumpPressed), Press(EventDashPressed), Press(EventAttackPressed),
	}
	ticks := int(p.KnockbackDuration/tick + 0.5)
	for i := range ticks {
		require.Greater(t, c.State().KnockbackRemaining, 0.0, "tick %d", i)
		cmd := c.Advance(presses, grounded, tick)
		require.True(t, cmd.OverrideVelocity)
		require.Equal(t, want, cmd.Velocity)
		require.Empty(t, c.PendingTasks())
	}

	s := c.State()
	assert.Zero(t, s.KnockbackRemaining)
	assert.True(t, s.CanMove)
	assert.False(t, s.Dashing)
	assert.False(t, s.Attacking)
	assert.Equal(t, 1, s.DashesAvailable)
}

func TestKnockbackDirection(t *testing.T) {
	c := newTestController(t, nil)
	c.ApplyKnockback(false, 1)
	cmd := c.Advance(nil, grounded, tick)
	assert.Equal(t, config.Harold.KnockbackForce, cmd.Velocity.X)
	assert.True(t, cmd.Animation.Knockback)
}

func TestKnockbackMultiplier(t *testing.T) {
	c := newTestController(t, nil)
	c.ApplyKnockback(true, 2)
	assert.InDelta(t, 2*config.Harold.KnockbackDuration, c.State().KnockbackRemaining, 1e-9)

	c.ApplyKnockback(true, 0)
	assert.InDelta(t, config.Harold.KnockbackDuration, c.State().KnockbackRemaining, 1e-9)
}

func TestKnockbackCancelsDash(t *testing.T) {
	c := newTestController(t, nil)
	p := config.Harold
	c.Advance(nil, grounded, tick)
	c.Advance([]InputEvent{MoveAxis(0, 1), Press(EventDashPressed)}, airborne(0), tick)
	require.True(t, c.State().Dashing)
	require.Equal(t, p.UpDashGravityScale, c.State().GravityScale)

	c.ApplyKnockback(false, 1)
	s := c.State()
	assert.False(t, s.Dashing)
	assert.Equal(t, p.BaseGravityScale, s.GravityScale)
	assert.Empty(t, c.PendingTasks())

	cmd := c.Advance(nil, airborne(0), tick)
	assert.True(t, cmd.SetGravity)
	assert.Equal(t, p.BaseGravityScale, cmd.GravityScale)
}

func TestKnockbackCancelsAttack(t *testing.T) {
	targets := &fakeTargets{hits: []DamageTarget{&dummy{}}}
	c := newTestController(t, targets)
	c.Advance(nil, grounded, tick)
	c.Advance([]InputEvent{Press(EventAttackPressed)}, grounded, tick)

	c.ApplyKnockback(true, 1)
	for range 10 {
		cmd := c.Advance(nil, grounded, tick)
		require.Empty(t, cmd.Hits)
	}
	assert.Empty(t, targets.centers, "cancelled swing never queries")
	assert.False(t, c.State().Attacking)
}

func TestKnockbackAfterDestroyIsIgnored(t *testing.T) {
	c := newTestController(t, nil)
	c.Destroy()
	c.ApplyKnockback(true, 1)
	assert.Zero(t, c.State().KnockbackRemaining)
}
