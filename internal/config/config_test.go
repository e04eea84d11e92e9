package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT", "MAX_INPUT_BYTES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxInputBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("MAX_INPUT_BYTES", "512")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(512), cfg.MaxInputBytes)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")

	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("MAX_INPUT_BYTES", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "MAX_INPUT_BYTES")
}
