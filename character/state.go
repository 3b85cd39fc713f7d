package character

// maxDashes caps dashesAvailable; landing and wall jumps refill up to it.
const maxDashes = 1

// timerEpsilon treats a timer this close to zero as expired so accumulated
// float dt lands on the configured durations.
const timerEpsilon = 1e-9

// wallSlideThreshold is the vertical speed a body must fall faster than to
// start sliding down a wall.
const wallSlideThreshold = -0.1

// State is the mutable state of one character. It is owned by a single
// Controller; State() hands out copies.
type State struct {
	Horizontal float64
	Vertical   float64

	Grounded          bool
	WasGrounded       bool
	TouchingLeftWall  bool
	TouchingRightWall bool
	WallSliding       bool
	WallJumping       bool
	HoldingJump       bool
	CanMove           bool
	CanMoveHorizontal bool
	FacingRight       bool
	Attacking         bool
	Dashing           bool

	DashVariant           DashVariant
	DashesAvailable       int
	DashCooldownRemaining float64
	KnockbackRemaining    float64
	KnockFromRight        bool
	JumpHoldTime          float64
	JumpPressTimestamp    float64
	WallJumpDirection     float64

	GravityScale float64
	Clock        float64 // accumulated simulation time
}

// Facing returns 1 when facing right and -1 otherwise.
func (s *State) Facing() float64 {
	if s.FacingRight {
		return 1
	}
	return -1
}

// TouchingWall reports contact with either wall.
func (s *State) TouchingWall() bool {
	return s.TouchingLeftWall || s.TouchingRightWall
}

// TaskKind names a multi-tick action.
type TaskKind int

const (
	TaskDash TaskKind = iota
	TaskDashCooldown
	TaskAttackWindup
	TaskAttackRecovery
	TaskWallJumpRelease
)

func (k TaskKind) String() string {
	switch k {
	case TaskDash:
		return "dash"
	case TaskDashCooldown:
		return "dash-cooldown"
	case TaskAttackWindup:
		return "attack-windup"
	case TaskAttackRecovery:
		return "attack-recovery"
	case TaskWallJumpRelease:
		return "wall-jump-release"
	}
	return "unknown"
}

// task is a resumable action: it counts remaining down by dt each tick and
// runs onComplete once it expires.
type task struct {
	kind       TaskKind
	remaining  float64
	onComplete func(f *frame)
	cancelled  bool
}
