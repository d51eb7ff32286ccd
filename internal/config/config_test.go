package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PAYSPLIT_THEME", "")
	t.Setenv("PAYSPLIT_DEBUG", "")
	t.Setenv("PAYSPLIT_LOG_FILE", "")
	return dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true in empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.BarWidth != DefaultBarWidth {
		t.Errorf("BarWidth = %d, want %d", cfg.General.BarWidth, DefaultBarWidth)
	}
	if cfg.Allocation.MismatchTolerance != 0 {
		t.Errorf("MismatchTolerance = %v, want 0", cfg.Allocation.MismatchTolerance)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.General.DefaultTotal = 2500
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Allocation.MismatchTolerance = 0.01
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "paysplit", "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "paysplit"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[general\nbar_width = "), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("fallback Theme = %q, want defaults", cfg.Appearance.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()

	t.Setenv("PAYSPLIT_THEME", "terminal")
	if got := GetTheme(cfg); got != "terminal" {
		t.Errorf("GetTheme = %q, want terminal", got)
	}

	t.Setenv("PAYSPLIT_DEBUG", "true")
	if !DebugEnabled(cfg) {
		t.Error("DebugEnabled = false with PAYSPLIT_DEBUG=true")
	}
	t.Setenv("PAYSPLIT_DEBUG", "nope")
	if DebugEnabled(cfg) {
		t.Error("DebugEnabled = true with unparsable PAYSPLIT_DEBUG")
	}

	t.Setenv("PAYSPLIT_LOG_FILE", "/tmp/x.log")
	if got := LogPath(cfg); got != "/tmp/x.log" {
		t.Errorf("LogPath = %q", got)
	}
}

func TestBarWidthBounds(t *testing.T) {
	tests := map[int]int{0: DefaultBarWidth, -4: DefaultBarWidth, 3: MinBarWidth, 80: 80, 999: MaxBarWidth}
	for in, want := range tests {
		cfg := DefaultConfig()
		cfg.General.BarWidth = in
		if got := BarWidth(cfg); got != want {
			t.Errorf("BarWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
