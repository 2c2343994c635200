package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, Exists())
	assert.Equal(t, domain.DefaultHorizon, cfg.General.Horizon)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.Equal(t, filepath.Join(ConfigDir(), "snapshots.db"), cfg.SnapshotDBPath())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultSettings()
	cfg.General.Horizon = 36
	cfg.Output.Format = "json"
	cfg.Snapshots.DBPath = "/tmp/runway-test.db"
	require.NoError(t, Save(cfg))

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "runway", "config.toml"), SettingsPath())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "/tmp/runway-test.db", loaded.SnapshotDBPath())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("[output]\nformat = \"csv\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, domain.DefaultHorizon, cfg.General.Horizon)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))

	require.NoError(t, os.WriteFile(SettingsPath(), []byte("[general\n"), 0o600))
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")

	require.NoError(t, os.WriteFile(SettingsPath(), []byte("[general]\nhorizon = 0\n"), 0o600))
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "horizon")
}
