package engine

import (
	"os"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MECS_MAX_ENTITIES", "")
	require.NoError(t, os.Unsetenv("MECS_MAX_ENTITIES"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxEntities, cfg.MaxEntities)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MECS_MAX_ENTITIES", "64")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxEntities)

	r := NewRegistry(cfg)
	assert.Equal(t, 64, r.Capacity())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	err := Config{MaxEntities: 0}.Validate()
	assert.True(t, eris.Is(err, ErrInvalidConfig))

	err = Config{MaxEntities: -5}.Validate()
	assert.True(t, eris.Is(err, ErrInvalidConfig))
}
