package factory

import (
	"github.com/automoto/icecube/archetypes"
	"github.com/automoto/icecube/camera"
	"github.com/automoto/icecube/components"
	cfg "github.com/automoto/icecube/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the follow camera centred on target. Without manual
// bounds the camera is limited to the level solids grown by the configured
// padding until a room takes over.
func CreateCamera(ecs *ecs.ECS, target math.Vec2) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)

	halfW, halfH := cfg.C.ViewHalfExtents()
	follower := camera.NewFollower(cfg.Camera, halfW, halfH)
	if !cfg.Camera.UseManualBounds {
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			level := components.Level.Get(levelEntry)
			if lower, upper, ok := camera.BoundsFromRects(level.Solids, cfg.Camera.AutoDetectPadding); ok {
				follower.SetBounds(lower, upper)
			}
		}
	}
	follower.SetTarget(target)
	follower.SnapToTarget()

	components.Camera.Set(entry, &components.CameraData{
		Follower: follower,
		Position: follower.Position(),
	})
	return entry
}
