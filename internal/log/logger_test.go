package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComponentTagging(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "tui", Output: &buf})

	l.Info("item added", "index", 2)
	l.WithComponent("model").Warn("clamped")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=tui") || !strings.Contains(out, "index=2") {
		t.Errorf("missing tui record: %q", out)
	}
	if !strings.Contains(out, "component=model") {
		t.Errorf("missing model record: %q", out)
	}
	if strings.Count(out, "component=") != 2 {
		t.Errorf("component attr duplicated: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug record written at info level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Component() != "paysplit" {
		t.Fatalf("Component() = %q, want paysplit", l.Component())
	}
	l.Error("dropped")
}

func TestOpenFileCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	l, closer, err := OpenFile(path, "paysplit")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	l.Debug("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Fatalf("log file = %q, want debug record", data)
	}
}
