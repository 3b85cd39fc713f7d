package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.True(t, Loaded(Regular))
	assert.True(t, Loaded(Small))
	assert.NotNil(t, Small.Get())
}

func TestLoadRejectsBadData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
	assert.Panics(t, func() { FontName("broken").Get() })
}
