package character

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/icecube/config"
	"github.com/automoto/icecube/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller is the action state machine of one character.
type Controller struct {
	params  *config.MotionParameters
	attack  *config.AttackConfig
	targets TargetQuery

	state State
	tasks []*task

	// carry is the overshoot of the task that just expired, credited to any
	// task it schedules.
	carry float64

	// gravityDirty forces the next command to carry the gravity scale, used
	// when a cancelled dash restores gravity outside a tick.
	gravityDirty bool
	// preDashGravity is the scale to restore when a dash ends.
	preDashGravity float64

	destroyed bool
}

// New returns a controller for the given archetype. A nil or invalid tuning
// set is a configuration error; the caller should leave the character
// disabled. targets may be nil, in which case swings never hit.
func New(params *config.MotionParameters, attack *config.AttackConfig, targets TargetQuery) (*Controller, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	if err := attack.Validate(); err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	c := &Controller{
		params:  params,
		attack:  attack,
		targets: targets,
	}
	c.Reset()
	return c, nil
}

// Reset returns the character to its spawn state and drops every scheduled
// action.
func (c *Controller) Reset() {
	c.cancelAll()
	c.state = State{
		CanMove:           true,
		CanMoveHorizontal: true,
		FacingRight:       true,
		WallJumpDirection: 1,
		GravityScale:      c.params.BaseGravityScale,
		Clock:             c.state.Clock,
	}
	c.preDashGravity = c.params.BaseGravityScale
	c.gravityDirty = true
}

// Destroy invalidates every pending action. Advance is a no-op afterwards.
func (c *Controller) Destroy() {
	c.cancelAll()
	c.destroyed = true
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Params returns the tuning set the controller was built with.
func (c *Controller) Params() *config.MotionParameters {
	return c.params
}

// PendingTasks returns the kinds of the actions still running.
func (c *Controller) PendingTasks() []TaskKind {
	kinds := make([]TaskKind, 0, len(c.tasks))
	for _, t := range c.tasks {
		kinds = append(kinds, t.kind)
	}
	return kinds
}

// frame is the working set of one tick.
type frame struct {
	sample     PhysicsSample
	velocity   dmath.Vec2
	overridden bool
	gravitySet bool
	cmd        MotionCommand
}

func (f *frame) setVelocity(x, y float64) {
	f.velocity = dmath.Vec2{X: x, Y: y}
	f.overridden = true
}

// edges are the discrete presses seen this tick.
type edges struct {
	jumpPressed  bool
	jumpReleased bool
	dashPressed  bool
	attackPress  bool
}

// Advance runs one tick. events are the inputs delivered since the previous
// tick, sample is the physics state before integration and dt the elapsed
// simulation time.
func (c *Controller) Advance(events []InputEvent, sample PhysicsSample, dt float64) MotionCommand {
	if c.destroyed {
		return MotionCommand{}
	}
	if dt < 0 {
		dt = 0
	}

	s := &c.state
	s.Clock += dt
	in := c.ingest(events)

	f := &frame{sample: sample, velocity: sample.Velocity}

	// Knockback owns the body until it runs out.
	if s.KnockbackRemaining > 0 {
		c.knockbackTick(f, dt)
		return c.finish(f)
	}

	c.advanceTasks(f, dt)

	if !s.CanMove {
		return c.finish(f)
	}

	c.updateGround(sample)
	c.updateWalls(sample)
	c.updateWallSlide(f)
	c.handleJump(f, in)
	if in.dashPressed {
		c.tryDash(f)
	}
	if in.attackPress {
		c.tryAttack()
	}
	c.applyMovement(f)
	c.updateFacing(f)

	s.WasGrounded = s.Grounded
	return c.finish(f)
}

// ingest applies axis changes and jump hold bookkeeping and collects edges.
// Hold times are tracked even while another action locks the character.
func (c *Controller) ingest(events []InputEvent) edges {
	s := &c.state
	var in edges
	for _, ev := range events {
		switch ev.Kind {
		case EventMoveAxis:
			s.Horizontal = gamemath.ClampFloat(ev.X, -1, 1)
			s.Vertical = gamemath.ClampFloat(ev.Y, -1, 1)
		case EventJumpPressed:
			in.jumpPressed = true
			s.HoldingJump = true
			s.JumpPressTimestamp = s.Clock
		case EventJumpReleased:
			in.jumpReleased = true
			s.HoldingJump = false
			s.JumpHoldTime = s.Clock - s.JumpPressTimestamp
		case EventDashPressed:
			in.dashPressed = true
		case EventAttackPressed:
			in.attackPress = true
		}
	}
	return in
}

// updateGround refills one dash on landing.
func (c *Controller) updateGround(sample PhysicsSample) {
	s := &c.state
	s.Grounded = sample.Grounded
	if s.Grounded && !s.WasGrounded && s.DashesAvailable == 0 {
		s.DashesAvailable = 1
	}
}

// updateWalls records wall contact and points the wall jump away from the
// touched wall.
func (c *Controller) updateWalls(sample PhysicsSample) {
	s := &c.state
	s.TouchingLeftWall = sample.TouchingLeftWall
	s.TouchingRightWall = sample.TouchingRightWall
	if s.TouchingLeftWall {
		s.WallJumpDirection = 1
	} else if s.TouchingRightWall {
		s.WallJumpDirection = -1
	}
}

func (c *Controller) updateWallSlide(f *frame) {
	s := &c.state
	if s.TouchingWall() && !s.Grounded && f.velocity.Y < wallSlideThreshold {
		s.WallSliding = true
		s.CanMoveHorizontal = false
		f.setVelocity(0, f.velocity.Y*c.params.WallSlideSpeedFactor)
		return
	}
	s.WallSliding = false
	s.CanMoveHorizontal = true
}

func (c *Controller) handleJump(f *frame, in edges) {
	s := &c.state
	p := c.params

	if in.jumpPressed && s.Grounded {
		f.setVelocity(f.velocity.X, p.JumpingPower)
	}

	// Variable jump height.
	if in.jumpReleased && f.velocity.Y > 0 {
		f.setVelocity(f.velocity.X, f.velocity.Y*p.JumpCutMultiplier)
	}

	if in.jumpPressed {
		c.setGravity(f, p.FallingGravityScale)
	}

	if in.jumpPressed && s.TouchingWall() && !s.Grounded {
		c.wallJump(f)
	}
}

func (c *Controller) wallJump(f *frame) {
	s := &c.state
	p := c.params

	s.DashesAvailable = min(s.DashesAvailable+1, maxDashes)
	s.WallJumping = true

	// Only the newest wall jump releases control.
	c.cancelKind(TaskWallJumpRelease)
	hold := math.Min(s.JumpHoldTime, p.WallJumpDuration)
	c.schedule(TaskWallJumpRelease, hold*1.5, func(*frame) {
		c.state.WallJumping = false
	})

	f.setVelocity(p.WallJumpSidewaysPower*s.WallJumpDirection, p.WallJumpUpPower)
}

// applyMovement accelerates toward the requested horizontal speed unless
// another action owns horizontal control.
func (c *Controller) applyMovement(f *frame) {
	s := &c.state
	if !s.CanMove || !s.CanMoveHorizontal || s.WallJumping {
		return
	}
	p := c.params
	f.cmd.HorizontalForce = gamemath.MovementForce(
		s.Horizontal*p.MoveSpeed, f.velocity.X,
		p.Acceleration, p.Deceleration, p.VelocityPower,
	)
}

func (c *Controller) updateFacing(f *frame) {
	s := &c.state
	if (s.FacingRight && s.Horizontal < 0) || (!s.FacingRight && s.Horizontal > 0) {
		s.FacingRight = !s.FacingRight
		f.cmd.FacingFlipped = true
	}
}

func (c *Controller) setGravity(f *frame, scale float64) {
	c.state.GravityScale = scale
	f.gravitySet = true
}

func (c *Controller) finish(f *frame) MotionCommand {
	s := &c.state
	cmd := f.cmd

	if f.overridden {
		cmd.Velocity = f.velocity
		cmd.OverrideVelocity = true
	}
	if f.gravitySet || c.gravityDirty {
		cmd.GravityScale = s.GravityScale
		cmd.SetGravity = true
		c.gravityDirty = false
	}

	s.DashCooldownRemaining = 0
	for _, t := range c.tasks {
		if t.kind == TaskDashCooldown {
			s.DashCooldownRemaining = math.Max(t.remaining, 0)
		}
	}

	cmd.FacingRight = s.FacingRight
	cmd.Animation = AnimationSignals{
		Speed:       math.Abs(s.Horizontal),
		Attacking:   s.Attacking,
		Dashing:     s.Dashing,
		WallSliding: s.WallSliding,
		Grounded:    f.sample.Grounded,
		Knockback:   s.KnockbackRemaining > 0,
	}
	return cmd
}

// schedule starts a task. Time the previous task overshot its deadline is
// credited to the new one.
func (c *Controller) schedule(kind TaskKind, duration float64, onComplete func(f *frame)) {
	c.tasks = append(c.tasks, &task{
		kind:       kind,
		remaining:  duration - c.carry,
		onComplete: onComplete,
	})
}

// maxChainedTasks bounds how many zero length tasks may complete in one tick.
const maxChainedTasks = 8

func (c *Controller) advanceTasks(f *frame, dt float64) {
	step := dt
	for range maxChainedTasks {
		pending := c.tasks
		c.tasks = nil
		fired := false
		for _, t := range pending {
			if t.cancelled {
				continue
			}
			t.remaining -= step
			if t.remaining > timerEpsilon {
				c.tasks = append(c.tasks, t)
				continue
			}
			fired = true
			c.carry = math.Max(-t.remaining, 0)
			t.onComplete(f)
			c.carry = 0
		}
		c.tasks = slices.DeleteFunc(c.tasks, func(t *task) bool { return t.cancelled })

		// Tasks chained by a completion may already be due.
		if !fired || !c.hasExpired() {
			return
		}
		step = 0
	}
}

func (c *Controller) hasExpired() bool {
	for _, t := range c.tasks {
		if !t.cancelled && t.remaining <= timerEpsilon {
			return true
		}
	}
	return false
}

func (c *Controller) cancelKind(kinds ...TaskKind) {
	for _, t := range c.tasks {
		if slices.Contains(kinds, t.kind) {
			t.cancelled = true
		}
	}
	c.tasks = slices.DeleteFunc(c.tasks, func(t *task) bool { return t.cancelled })
}

func (c *Controller) cancelAll() {
	for _, t := range c.tasks {
		t.cancelled = true
	}
	c.tasks = nil
}

func (c *Controller) hasTask(kind TaskKind) bool {
	for _, t := range c.tasks {
		if t.kind == kind && !t.cancelled {
			return true
		}
	}
	return false
}
