package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Notify)
	assert.Equal(t, filepath.Join(cfg.DataDir, "wille.db"), cfg.DBPath)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+dir+`"
storage = "Memory"
log_level = "debug"
theme = "dracula"
notify = false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.False(t, cfg.Notify)
	assert.Equal(t, filepath.Join(dir, "wille.db"), cfg.DBPath)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `storage = "sqlite"`)
	envDir := t.TempDir()
	t.Setenv("WILLE_DATA_DIR", envDir)
	t.Setenv("WILLE_STORAGE", "memory")
	t.Setenv("WILLE_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, envDir, cfg.DataDir)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `colour = "blue"`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadConfigRejectsUnknownStorage(t *testing.T) {
	path := writeConfig(t, `storage = "cookies"`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `storage = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestOverrideMovesDerivedDBPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, cfg.Override(dir, "memory"))
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "wille.db"), cfg.DBPath)
	assert.Equal(t, StorageMemory, cfg.Storage)

	assert.Error(t, cfg.Override("", "postgres"))
}

func TestOverrideKeepsExplicitDBPath(t *testing.T) {
	path := writeConfig(t, `db_path = "/srv/wille/plans.db"`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Override(t.TempDir(), ""))
	assert.Equal(t, "/srv/wille/plans.db", cfg.DBPath)
}
