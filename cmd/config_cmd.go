package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/paysplit/internal/cli"
	"github.com/theirongolddev/paysplit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultTotal > 0 {
		fmt.Printf("    Default paycheck: %s\n", cli.FormatMoney(cfg.General.DefaultTotal))
	} else {
		fmt.Println("    Default paycheck: not set")
	}
	fmt.Printf("    Bar width:        %d\n", config.BarWidth(cfg))
	fmt.Println()

	fmt.Println("  [Allocation]")
	if cfg.Allocation.MismatchTolerance > 0 {
		fmt.Printf("    Mismatch tolerance: %g\n", cfg.Allocation.MismatchTolerance)
	} else {
		fmt.Println("    Mismatch tolerance: exact")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Debug: %v\n", config.DebugEnabled(cfg))
	fmt.Printf("    File:  %s\n", config.LogPath(cfg))
	fmt.Println()

	fmt.Println("  Run `paysplit setup` to reconfigure.")
	return nil
}
