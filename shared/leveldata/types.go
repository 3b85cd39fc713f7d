// Package leveldata provides TMX level parsing for the demo world.
// It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
//
// Everything here is in Tiled pixel space: origin top left, y down.
// Projection converts to the y-up world units the controllers use.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	CameraZones []CameraZone
	Enemies     []EnemySpawn
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile or block.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// CameraZone is a room trigger volume from the CameraBounds object group.
type CameraZone struct {
	Name       string
	X, Y, W, H float64

	Mode     string  // "transition", "snap" or "set"
	Duration float64 // seconds, <= 0 for the camera default
	Padding  float64 // pixels trimmed from each side when bounds come from the volume

	// Custom bounds, used instead of the volume when HasBounds is set.
	HasBounds                          bool
	BoundsX, BoundsY, BoundsW, BoundsH float64
}

// EnemySpawn is an entry of the Enemies object group.
type EnemySpawn struct {
	Name      string
	X, Y      float64
	Archetype string
	Health    int // 0 for the configured default
}
