package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for name, p := range Archetypes {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, p.Validate())
		})
	}
	assert.NoError(t, Attack.Validate())
}

func TestValidate(t *testing.T) {
	var nilParams *MotionParameters
	assert.ErrorIs(t, nilParams.Validate(), ErrMissingParameters)

	p := Harold
	p.KnockbackDuration = -0.1
	var cfgErr *ConfigurationError
	require.True(t, errors.As(p.Validate(), &cfgErr))
	assert.Equal(t, "KnockbackDuration", cfgErr.Field)
	assert.Contains(t, cfgErr.Error(), "KnockbackDuration")

	p = Harold
	p.VelocityPower = 0
	assert.Error(t, p.Validate())

	a := Attack
	a.Windup = -1
	assert.Error(t, a.Validate())
}

func TestPresetsAreIndependent(t *testing.T) {
	assert.Equal(t, Harold.MoveSpeed, Archetypes["harold"].MoveSpeed)
	assert.NotEqual(t, Harold.MoveSpeed, Archetypes["heavy"].MoveSpeed)
}

func TestViewHalfExtents(t *testing.T) {
	c := Config{Width: 640, Height: 320, PixelsPerUnit: 32}
	w, h := c.ViewHalfExtents()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 5.0, h)
}
