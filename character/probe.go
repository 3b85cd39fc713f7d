package character

import (
	"github.com/automoto/icecube/config"
	"github.com/yohamta/donburi/features/math"
)

// ErrMissingParameters is returned by New when no tuning set was supplied.
var ErrMissingParameters = config.ErrMissingParameters

// PhysicsQuery is the collision surface the controller's probes run against.
// A miss is a plain false, never an error.
type PhysicsQuery interface {
	IsGrounded(point math.Vec2, radius float64) bool
	OverlapBox(center, size math.Vec2) bool
}

// Sampler builds a PhysicsSample from ground and wall probes.
type Sampler struct {
	Query PhysicsQuery
	Probe config.ProbeConfig
}

// Sample probes around the body centre.
func (s Sampler) Sample(position, velocity math.Vec2) PhysicsSample {
	sample := PhysicsSample{Position: position, Velocity: velocity}
	if s.Query == nil {
		return sample
	}
	p := s.Probe
	size := math.Vec2{X: p.WallWidth, Y: p.WallHeight}

	sample.Grounded = s.Query.IsGrounded(math.Vec2{X: position.X, Y: position.Y + p.GroundOffsetY}, p.GroundRadius)
	sample.TouchingLeftWall = s.Query.OverlapBox(math.Vec2{X: position.X - p.WallOffsetX, Y: position.Y}, size)
	sample.TouchingRightWall = s.Query.OverlapBox(math.Vec2{X: position.X + p.WallOffsetX, Y: position.Y}, size)
	return sample
}
