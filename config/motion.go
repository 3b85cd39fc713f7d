package config

import (
	"errors"
	"fmt"
)

// MotionParameters contains the immutable tuning of one character archetype.
// Values are in world units (y-up) and seconds. A preset is shared read-only
// by every character spawned from it.
type MotionParameters struct {
	// Movement
	MoveSpeed     float64
	Acceleration  float64
	Deceleration  float64
	VelocityPower float64 // exponent applied to the speed gap

	// Jumping
	JumpingPower        float64
	JumpCutMultiplier   float64 // vertical velocity scale on early release
	FallingGravityScale float64 // gravity scale raised on every jump press
	BaseGravityScale    float64 // gravity scale at spawn

	// Wall movement
	WallJumpSidewaysPower float64
	WallJumpUpPower       float64
	WallSlideSpeedFactor  float64
	WallJumpDuration      float64

	// Dash
	DashingPower             float64
	DashingTime              float64
	DashingCooldown          float64
	UpDashingPower           float64
	DownDashingPower         float64 // negative by convention
	DiagonalDashingPower     float64
	DiagonalDownDashingPower float64 // negative by convention
	DashGravityScale         float64
	UpDashGravityScale       float64

	// Knockback
	KnockbackForce    float64
	KnockbackDuration float64
}

// AttackConfig contains the melee swing values.
type AttackConfig struct {
	Range    float64 // radius of the hit circle
	Damage   int
	Windup   float64 // seconds before the hit frame
	Recovery float64 // seconds after the hit frame
	OffsetX  float64 // hit circle centre, in facing direction
	OffsetY  float64
}

// ProbeConfig contains the ground and wall probe geometry, relative to the
// character centre.
type ProbeConfig struct {
	GroundOffsetY float64
	GroundRadius  float64
	WallOffsetX   float64 // half width of the character plus skin
	WallWidth     float64
	WallHeight    float64
	BodyWidth     float64
	BodyHeight    float64
}

// ConfigurationError reports a missing or out-of-range tuning value.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// ErrMissingParameters is returned when no tuning set was supplied.
var ErrMissingParameters = errors.New("motion parameters not assigned")

// Validate checks the data model invariants: every duration and magnitude is
// non-negative, only the down dash powers may be signed.
func (p *MotionParameters) Validate() error {
	if p == nil {
		return ErrMissingParameters
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"MoveSpeed", p.MoveSpeed},
		{"Acceleration", p.Acceleration},
		{"Deceleration", p.Deceleration},
		{"VelocityPower", p.VelocityPower},
		{"JumpingPower", p.JumpingPower},
		{"JumpCutMultiplier", p.JumpCutMultiplier},
		{"FallingGravityScale", p.FallingGravityScale},
		{"BaseGravityScale", p.BaseGravityScale},
		{"WallJumpSidewaysPower", p.WallJumpSidewaysPower},
		{"WallJumpUpPower", p.WallJumpUpPower},
		{"WallSlideSpeedFactor", p.WallSlideSpeedFactor},
		{"WallJumpDuration", p.WallJumpDuration},
		{"DashingPower", p.DashingPower},
		{"DashingTime", p.DashingTime},
		{"DashingCooldown", p.DashingCooldown},
		{"UpDashingPower", p.UpDashingPower},
		{"DiagonalDashingPower", p.DiagonalDashingPower},
		{"DashGravityScale", p.DashGravityScale},
		{"UpDashGravityScale", p.UpDashGravityScale},
		{"KnockbackForce", p.KnockbackForce},
		{"KnockbackDuration", p.KnockbackDuration},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ConfigurationError{Field: f.name, Reason: "must not be negative"}
		}
	}
	if p.VelocityPower == 0 {
		return &ConfigurationError{Field: "VelocityPower", Reason: "must be positive"}
	}
	return nil
}

// Validate checks the attack window values.
func (a *AttackConfig) Validate() error {
	if a == nil {
		return &ConfigurationError{Field: "Attack", Reason: "not assigned"}
	}
	switch {
	case a.Range < 0:
		return &ConfigurationError{Field: "Attack.Range", Reason: "must not be negative"}
	case a.Windup < 0:
		return &ConfigurationError{Field: "Attack.Windup", Reason: "must not be negative"}
	case a.Recovery < 0:
		return &ConfigurationError{Field: "Attack.Recovery", Reason: "must not be negative"}
	}
	return nil
}

// Harold is the default player archetype.
var Harold MotionParameters

// Attack is the default melee configuration.
var Attack AttackConfig

// Probe is the default probe geometry.
var Probe ProbeConfig

// Archetypes maps archetype names, as authored in level files, to presets.
var Archetypes map[string]*MotionParameters

func init() {
	Harold = MotionParameters{
		MoveSpeed:     8,
		Acceleration:  5,
		Deceleration:  5,
		VelocityPower: 1,

		JumpingPower:        16,
		JumpCutMultiplier:   0.5,
		FallingGravityScale: 8.17,
		BaseGravityScale:    1,

		WallJumpSidewaysPower: 5,
		WallJumpUpPower:       12,
		WallSlideSpeedFactor:  0.3,
		WallJumpDuration:      0.075,

		DashingPower:             24,
		DashingTime:              0.2,
		DashingCooldown:          1,
		UpDashingPower:           24,
		DownDashingPower:         -24,
		DiagonalDashingPower:     24,
		DiagonalDownDashingPower: -24,
		DashGravityScale:         0,
		UpDashGravityScale:       20,

		KnockbackForce:    10,
		KnockbackDuration: 0.5,
	}

	// Heavier preset for enemies and the alternate character.
	heavy := Harold
	heavy.MoveSpeed = 6
	heavy.Acceleration = 3
	heavy.Deceleration = 6
	heavy.JumpingPower = 14
	heavy.DashingPower = 18
	heavy.KnockbackDuration = 0.7

	Archetypes = map[string]*MotionParameters{
		"harold": &Harold,
		"heavy":  &heavy,
	}

	Attack = AttackConfig{
		Range:    0.5,
		Damage:   1,
		Windup:   0.1,
		Recovery: 0.3,
		OffsetX:  0.6,
		OffsetY:  0,
	}

	Probe = ProbeConfig{
		GroundOffsetY: -0.5,
		GroundRadius:  0.45,
		WallOffsetX:   0.65,
		WallWidth:     0.2,
		WallHeight:    0.6,
		BodyWidth:     1,
		BodyHeight:    1,
	}
}
