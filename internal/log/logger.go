// Package log wraps slog with a component field. The TUI owns the terminal,
// so output goes to a file or nowhere.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger wraps slog.Logger and tags every record with its component.
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer // nil discards
}

// New creates a logger writing text records to cfg.Output.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	if cfg.Component == "" {
		cfg.Component = "paysplit"
	}
	base := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level}))
	return &Logger{
		Logger:    base.With("component", cfg.Component),
		base:      base,
		component: cfg.Component,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(Config{})
}

// OpenFile opens path through tea.LogToFile, which also routes the standard
// library logger there, and returns a debug-level logger on top of it.
func OpenFile(path, component string) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := tea.LogToFile(path, component)
	if err != nil {
		return nil, nil, err
	}
	return New(Config{Level: slog.LevelDebug, Component: component, Output: f}), f, nil
}

// WithComponent returns a logger tagged with a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With("component", component),
		base:      l.base,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs l as the slog default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
