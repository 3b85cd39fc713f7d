package components

import (
	"github.com/automoto/icecube/camera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Follower *camera.Follower
	Position math.Vec2 // world units, centre of the view
}

var Camera = donburi.NewComponentType[CameraData]()
