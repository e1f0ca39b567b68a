package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets a variable for the test and restores it afterwards.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t, "SEEDLING_DATA_DIR")
	clearEnv(t, "SEEDLING_HIDDEN_SIZE")
	clearEnv(t, "SEEDLING_VERBOSE")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 128, cfg.HiddenSize)
	assert.False(t, cfg.Verbose)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SEEDLING_DATA_DIR", "/srv/mnist")
	t.Setenv("SEEDLING_HIDDEN_SIZE", "256")
	t.Setenv("SEEDLING_VERBOSE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/srv/mnist", cfg.DataDir)
	assert.Equal(t, 256, cfg.HiddenSize)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_RejectsBadHiddenSize(t *testing.T) {
	t.Setenv("SEEDLING_HIDDEN_SIZE", "-4")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("SEEDLING_HIDDEN_SIZE", "not-a-number")
	_, err = FromEnv()
	assert.Error(t, err)
}
