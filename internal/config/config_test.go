package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the settings for the test; an empty variable would still
// shadow a .env entry.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"CHARTREF_PORT", "CHARTREF_MODE", "CHARTREF_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHARTREF_PORT=9090\nCHARTREF_MODE=debug\nCHARTREF_LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHARTREF_PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHARTREF_PORT=9090\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr())
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHARTREF_MODE", "turbo")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHARTREF_MODE")

	require.NoError(t, os.Unsetenv("CHARTREF_MODE"))
	t.Setenv("CHARTREF_LOG_LEVEL", "loud")

	_, err = Load(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHARTREF_LOG_LEVEL")
}

func TestLoadMalformedEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHARTREF_PORT='unterminated\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated quoted value")
}

func TestLoadSkipsMissingFiles(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	present := filepath.Join(dir, "present.env")
	require.NoError(t, os.WriteFile(present, []byte("CHARTREF_PORT=9191\n"), 0o600))

	cfg, err := Load(filepath.Join(dir, "absent.env"), present)
	require.NoError(t, err)
	assert.Equal(t, ":9191", cfg.Addr())
}
