// Package cmd implements the paysplit CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paysplit/internal/config"
	plog "github.com/theirongolddev/paysplit/internal/log"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

var (
	flagTheme string
	flagDebug bool
)

// Shared state set up before every command runs.
var (
	appCfg    config.Config
	logger    = plog.Discard()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "paysplit",
	Short: "Split a paycheck into categories",
	Long:  "Divide a paycheck across spending categories by fixed amount or percentage, and see what is left.",
	// Without a subcommand, open the interactive splitter.
	RunE:               runTUI,
	PersistentPreRunE:  prepare,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to the log file")
	rootCmd.Flags().Float64Var(&flagTotal, "total", 0, "Starting paycheck amount")
}

// prepare loads .env and config, picks the theme and opens the debug log.
func prepare(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	} else {
		cfg.Appearance.Theme = config.GetTheme(cfg)
	}
	theme.SetActive(cfg.Appearance.Theme)

	if flagDebug || config.DebugEnabled(cfg) {
		l, closer, err := plog.OpenFile(config.LogPath(cfg), "paysplit")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		logger, logCloser = l, closer
		plog.SetDefault(logger)
		logger.Debug("starting", "command", cmd.Name(), "config", config.ConfigPath(), "theme", cfg.Appearance.Theme)
	}

	appCfg = cfg
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}
