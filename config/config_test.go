package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{keyEnv, "PRECISION", "PARALLEL_TOLERANCE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_LocalFile(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int32(28), cfg.GetPrecision())
	assert.Equal(t, 1e-10, cfg.GetParallelTolerance())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, int32(defaultPrecision), cfg.GetPrecision())
	assert.Equal(t, defaultParallelTolerance, cfg.GetParallelTolerance())
	assert.Equal(t, defaultLogLevel, cfg.GetLogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PRECISION", "12")
	t.Setenv("PARALLEL_TOLERANCE", "0.001")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, int32(12), cfg.GetPrecision())
	assert.Equal(t, 0.001, cfg.GetParallelTolerance())
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
