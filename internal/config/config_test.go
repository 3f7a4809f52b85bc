package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CONNECT4_TEST_STRING", "hello")
	assert.Equal(t, "hello", GetEnv("CONNECT4_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CONNECT4_TEST_UNSET", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("CONNECT4_TEST_INT", "4096")
	assert.Equal(t, 4096, GetEnvAsInt("CONNECT4_TEST_INT", 7))

	t.Setenv("CONNECT4_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("CONNECT4_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvAsInt("CONNECT4_TEST_UNSET", 7))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)
	assert.Positive(t, cfg.TableSize)
	assert.Positive(t, cfg.Workers)

	// Load is once per process; repeated calls return the same config.
	assert.Same(t, cfg, Load())
}
