package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData is a body moved by the demo integrator. Values are world units,
// y up.
type PhysicsData struct {
	Velocity     math.Vec2
	GravityScale float64
	Force        float64 // horizontal force for the next step, cleared after integration
	Grounded     bool    // resting on a solid after the last step
	Width        float64
	Height       float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
