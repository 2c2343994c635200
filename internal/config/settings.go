package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/runway-simulator/internal/domain"
)

// Settings holds user preferences that apply across scenario files.
type Settings struct {
	General   GeneralSettings  `toml:"general"`
	Snapshots SnapshotSettings `toml:"snapshots"`
	Output    OutputSettings   `toml:"output"`
}

// GeneralSettings holds projection defaults.
type GeneralSettings struct {
	Horizon      int    `toml:"horizon"`
	ScenarioFile string `toml:"scenario_file,omitempty"`
}

// SnapshotSettings locates the snapshot database.
type SnapshotSettings struct {
	DBPath string `toml:"db_path,omitempty"`
}

// OutputSettings holds rendering preferences.
type OutputSettings struct {
	Format string `toml:"format"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{Horizon: domain.DefaultHorizon},
		Output:  OutputSettings{Format: "console"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// SnapshotDBPath returns the configured snapshot database or the default
// location next to the settings file.
func (s Settings) SnapshotDBPath() string {
	if s.Snapshots.DBPath != "" {
		return s.Snapshots.DBPath
	}
	return filepath.Join(ConfigDir(), "snapshots.db")
}

// Load reads the settings file, returning defaults if it doesn't exist.
func Load() (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}
	if cfg.General.Horizon <= 0 || cfg.General.Horizon > MaxHorizon {
		return cfg, fmt.Errorf("settings horizon must be between 1 and %d months", MaxHorizon)
	}

	return cfg, nil
}

// Save writes the settings to disk.
func Save(cfg Settings) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(SettingsPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a settings file exists on disk.
func Exists() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}
