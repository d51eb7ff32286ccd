package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paysplit/internal/config"
	"github.com/theirongolddev/paysplit/internal/tui"
)

var flagTotal float64

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive splitter",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().Float64Var(&flagTotal, "total", 0, "Starting paycheck amount")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:    appCfg,
		Total:     flagTotal,
		NeedSetup: !config.Exists(),
		Logger:    logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
