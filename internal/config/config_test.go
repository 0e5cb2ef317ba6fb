package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CORKBOARD_SERVER", "")
	t.Setenv("CORKBOARD_TIMEOUT", "")
}

func TestLoad_NotInitialized(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	isolate(t)

	require.NoError(t, Save(&Config{ServerURL: "http://board.example:9090"}))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "http://board.example:9090", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestDefault(t *testing.T) {
	isolate(t)

	cfg := Default()
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CORKBOARD_SERVER", "http://env.example:1234")
	t.Setenv("CORKBOARD_TIMEOUT", "3s")

	cfg := Default()
	assert.Equal(t, "http://env.example:1234", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestEnvOverridesSavedConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(&Config{ServerURL: "http://saved.example"}))
	t.Setenv("CORKBOARD_SERVER", "http://env.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "http://env.example", cfg.ServerURL)
}
