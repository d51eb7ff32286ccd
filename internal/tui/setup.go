package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paysplit/internal/config"
	"github.com/theirongolddev/paysplit/internal/model"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

// SetupValues holds the first-run form fields. The form writes into them
// through pointers, so callers keep a single instance for the form's life.
type SetupValues struct {
	Theme string
	Total string
}

// NewSetupForm builds the first-run setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	if vals.Theme == "" {
		vals.Theme = theme.FlexokiDark.Name
	}

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to paysplit").
				Description("Split a paycheck into categories and see where it goes.\n\nSettings are saved to "+config.ConfigPath()),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewInput().
				Title("Starting paycheck amount").
				Description("Optional. Leave empty to enter it each time.").
				Placeholder("2500").
				Validate(validateAmount).
				Value(&vals.Total),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("enter a number, e.g. 2500 or 1250.50")
	}
	if d.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// ApplySetup folds the form values into cfg and returns the starting total
// (0 when left empty).
func ApplySetup(cfg config.Config, vals SetupValues) (config.Config, float64) {
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
	}
	total := 0.0
	if validateAmount(vals.Total) == nil {
		total = min(model.ParseAmount(vals.Total), model.MaxTotal)
	}
	cfg.General.DefaultTotal = total
	return cfg, total
}
