package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"number-management-service/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv registers cleanup for every variable the tests may touch.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_NAME",
		"LOG_LEVEL", "LOG_FORMAT",
		"REMOTE_USER_AGENT", "REMOTE_MAX_IDLE_CONNS_PER_HOST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8008", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "number-management-service", cfg.Server.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "number-management-service", cfg.Remote.UserAgent)
	assert.Equal(t, 16, cfg.Remote.MaxIdleConnsPerHost)
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("REMOTE_MAX_IDLE_CONNS_PER_HOST", "4")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Remote.MaxIdleConnsPerHost)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "SERVER_PORT=7070\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("REMOTE_MAX_IDLE_CONNS_PER_HOST", "many")

	_, err := config.LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode configuration")
}
