package config

import (
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	// Following
	HorizontalSmoothTime     float64
	VerticalSmoothTime       float64
	FallingSmoothTime        float64 // used for the tick the target starts falling
	FallingVelocityThreshold float64 // target vertical velocity below this is falling
	LookAheadDistance        float64
	LookAheadSmoothTime      float64
	LookAheadDecayRate       float64 // units/second toward zero while the target is still
	VerticalOffset           float64

	// Bounds
	UseManualBounds   bool
	ManualLowerBounds math.Vec2
	ManualUpperBounds math.Vec2
	AutoDetectPadding float64 // padding added around detected level solids
	UnboundedExtent   float64 // fallback range for an invalid bound axis

	// Room transitions
	RoomTransitionTime float64
	TransitionEase     ease.TweenFunc
}

// Camera is the default camera configuration.
var Camera CameraConfig

func init() {
	Camera = CameraConfig{
		HorizontalSmoothTime:     0.2,
		VerticalSmoothTime:       0.3,
		FallingSmoothTime:        0.1,
		FallingVelocityThreshold: -0.5,
		LookAheadDistance:        2,
		LookAheadSmoothTime:      0.5,
		LookAheadDecayRate:       1,
		VerticalOffset:           1,

		UseManualBounds:   false,
		AutoDetectPadding: 5,
		UnboundedExtent:   1000,

		RoomTransitionTime: 0.7,
		TransitionEase:     ease.InOutQuad,
	}
}
