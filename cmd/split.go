package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/paysplit/internal/bar"
	"github.com/theirongolddev/paysplit/internal/cli"
	"github.com/theirongolddev/paysplit/internal/config"
	"github.com/theirongolddev/paysplit/internal/model"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

var (
	flagSplitTotal float64
	flagSplitItems []string
	flagSplitWidth int
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Print a split without opening the TUI",
	Example: `  paysplit split --total 2500 --item "Rent=1200" --item "Savings=20%"
  paysplit split --total 1000 --item Food=300 --width 40`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().Float64Var(&flagSplitTotal, "total", 0, "Paycheck amount (defaults to the configured default)")
	splitCmd.Flags().StringArrayVarP(&flagSplitItems, "item", "i", nil, `Category as "Name=amount" or "Name=pct%"`)
	splitCmd.Flags().IntVarP(&flagSplitWidth, "width", "w", 0, "Bar width in columns")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, _ []string) error {
	total := flagSplitTotal
	if total <= 0 {
		total = appCfg.General.DefaultTotal
	}
	if total <= 0 {
		return errors.New("a paycheck amount is required (--total)")
	}

	a, err := buildAllocation(total, flagSplitItems)
	if err != nil {
		return err
	}

	cfg := appCfg
	if flagSplitWidth > 0 {
		cfg.General.BarWidth = flagSplitWidth
	}
	logger.Debug("split", "total", a.Total, "items", len(a.Items), "allocated", a.TotalAllocated())

	renderSplit(cmd.OutOrStdout(), a, config.BarWidth(cfg), cfg.Allocation.MismatchTolerance)
	return nil
}

// itemArg is one parsed --item value.
type itemArg struct {
	Name    string
	Amount  string
	Percent bool
}

// parseItemArg splits "Name=amount" or "Name=pct%". The last '=' separates
// the amount so names may contain '='.
func parseItemArg(s string) (itemArg, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return itemArg{}, fmt.Errorf("item %q: expected Name=amount or Name=pct%%", s)
	}

	arg := itemArg{Name: strings.TrimSpace(s[:i])}
	raw := strings.TrimSpace(s[i+1:])
	if strings.HasSuffix(raw, "%") {
		arg.Percent = true
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	}
	if _, err := decimal.NewFromString(raw); err != nil {
		return itemArg{}, fmt.Errorf("item %q: invalid amount %q", s, raw)
	}
	arg.Amount = raw
	return arg, nil
}

// buildAllocation applies the item args through the same operations the TUI
// uses, so clamping matches interactive entry.
func buildAllocation(total float64, args []string) (model.Allocation, error) {
	a := model.New(total)
	for _, s := range args {
		arg, err := parseItemArg(s)
		if err != nil {
			return model.Allocation{}, err
		}
		idx := len(a.Items)
		a = a.AddItem().UpdateName(idx, arg.Name)
		if arg.Percent {
			a = a.ToggleMode(idx)
		}
		a = a.UpdateAmount(idx, arg.Amount)
	}
	return a, nil
}

func renderSplit(w io.Writer, a model.Allocation, width int, tolerance float64) {
	t := theme.Active
	segs := bar.FromAllocation(a)

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("Paycheck %s", cli.FormatMoney(a.Total))))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n\n", cli.RenderSplitBar(segs, width, t.Palette(), t.Unallocated))
	fmt.Fprint(w, cli.RenderLegend(segs, t.Palette(), t.Unallocated))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTable(cli.BreakdownTable(a)))

	if a.Mismatch(tolerance) {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", cli.RenderWarning(cli.MismatchWarning(a.Remainder())))
	}
	fmt.Fprintln(w)
}
