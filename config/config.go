// Package config holds the tuning values for the character controller, the
// follow camera and the demo world. It never imports ebitengine or the donburi
// ECS, so the controller cores build and test headless; camera tuning uses
// the donburi math vector and gween easing types.
package config

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	TickRate      int     // simulation ticks per second
	PixelsPerUnit float64 // world units (y-up) to screen pixels
	LevelPath     string  // TMX level loaded by the demo scene
	SaveName      string  // gdata application name
}

// PhysicsConfig contains the values used by the demo physics integrator. The
// controller never reads these; they stand in for the external physics engine.
type PhysicsConfig struct {
	Gravity      float64 // units/s^2, applied scaled by the body's gravity scale
	MaxFallSpeed float64 // units/s
	MaxRunSpeed  float64 // horizontal speed cap, units/s
	Mass         float64 // horizontal forces are divided by this
	DeathPlaneY  float64 // respawn when the body falls below this height
}

// CombatConfig contains enemy and contact-damage values.
type CombatConfig struct {
	EnemyHealth         int
	HealthBarFrames     int     // ticks an enemy health bar stays visible after a hit
	ContactKnockbackMul float64 // knockback duration multiplier for enemy contact
	DeathTime           float64 // seconds an enemy lingers at zero health before removal
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawProbes bool // Draw ground, wall and attack probes
	DrawZones  bool // Draw camera bound zones
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Combat CombatConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		TickRate:      60,
		PixelsPerUnit: 32,
		LevelPath:     "levels/rooms.tmx",
		SaveName:      "icecube",
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		MaxFallSpeed: 30,
		MaxRunSpeed:  40,
		Mass:         1,
		DeathPlaneY:  -5,
	}

	Combat = CombatConfig{
		EnemyHealth:         5,
		HealthBarFrames:     90,
		ContactKnockbackMul: 1,
		DeathTime:           0.25,
	}

	Debug = DebugConfig{
		DrawProbes: true,
		DrawZones:  true,
	}
}

// ViewHalfExtents returns half the visible world area in world units.
func (c *Config) ViewHalfExtents() (halfWidth, halfHeight float64) {
	ppu := c.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	return float64(c.Width) / ppu / 2, float64(c.Height) / ppu / 2
}
