// Package config loads and saves paysplit preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all paysplit configuration. Categories are never stored here.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Allocation AllocationConfig `toml:"allocation"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultTotal float64 `toml:"default_total"`
	BarWidth     int     `toml:"bar_width"`
}

// AllocationConfig tunes how the allocation is checked.
type AllocationConfig struct {
	// MismatchTolerance is the largest |allocated - total| that still counts
	// as balanced. Zero means exact comparison.
	MismatchTolerance float64 `toml:"mismatch_tolerance"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file,omitempty"`
}

// Bar width bounds used when the configured value is out of range.
const (
	DefaultBarWidth = 60
	MinBarWidth     = 10
	MaxBarWidth     = 200
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			BarWidth: DefaultBarWidth,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paysplit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paysplit")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogPath returns the debug log path, from config or next to the config file.
func LogPath(cfg Config) string {
	if p := os.Getenv("PAYSPLIT_LOG_FILE"); p != "" {
		return p
	}
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(ConfigDir(), "debug.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetTheme returns the theme name from env var or config, in that order.
func GetTheme(cfg Config) string {
	if name := os.Getenv("PAYSPLIT_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// DebugEnabled reports whether debug logging is on via env var or config.
func DebugEnabled(cfg Config) bool {
	if v := os.Getenv("PAYSPLIT_DEBUG"); v != "" {
		on, err := strconv.ParseBool(v)
		return err == nil && on
	}
	return cfg.Log.Debug
}

// BarWidth returns the configured bar width, clamped to sane bounds.
func BarWidth(cfg Config) int {
	w := cfg.General.BarWidth
	if w <= 0 {
		return DefaultBarWidth
	}
	return min(max(w, MinBarWidth), MaxBarWidth)
}
