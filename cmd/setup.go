package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paysplit/internal/cli"
	"github.com/theirongolddev/paysplit/internal/config"
	"github.com/theirongolddev/paysplit/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	vals := tui.SetupValues{Theme: appCfg.Appearance.Theme}
	if appCfg.General.DefaultTotal > 0 {
		vals.Total = fmt.Sprintf("%g", appCfg.General.DefaultTotal)
	}

	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg, total := tui.ApplySetup(appCfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info("setup saved", "theme", cfg.Appearance.Theme, "default_total", total)

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Theme: %s\n", cfg.Appearance.Theme)
	if total > 0 {
		fmt.Printf("  Default paycheck: %s\n", cli.FormatMoney(total))
	}
	fmt.Println()
	fmt.Println("  Run `paysplit` to start splitting.")
	return nil
}
