package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/bar"
	"github.com/theirongolddev/paysplit/internal/cli"
	"github.com/theirongolddev/paysplit/internal/tui/components"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

const (
	nameColW   = 24
	amountColW = 14
)

func (a App) renderSplitTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	// Paycheck
	var pay strings.Builder
	pay.WriteString(labelStyle.Render("Amount  "))
	if a.editing == editTotal {
		pay.WriteString(a.input.View())
	} else if a.alloc.Total > 0 {
		pay.WriteString(valueStyle.Render(cli.FormatMoney(a.alloc.Total)))
	} else {
		pay.WriteString(dimStyle.Render("Enter your paycheck amount"))
	}
	pay.WriteString("\n")
	pay.WriteString(dimStyle.Render("[e] edit"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Paycheck", pay.String(), cw))
	b.WriteString("\n")

	if a.alloc.Total <= 0 {
		hint := dimStyle.Render("Enter a paycheck amount to start splitting.")
		b.WriteString(components.ContentCard("Categories", hint, cw))
		return b.String()
	}

	b.WriteString(components.ContentCard("Categories", a.renderItemList(innerW), cw))
	b.WriteString("\n")

	segs := bar.FromAllocation(a.alloc)
	bw := a.barWidth(cw)
	sel := -1
	if len(a.alloc.Items) > 0 {
		sel = a.cursor
	}

	var split strings.Builder
	split.WriteString(components.SplitBar(segs, bw, sel))
	split.WriteString("\n")
	split.WriteString(components.AllocationGauge(a.alloc.TotalAllocated(), a.alloc.Total, 10, max(bw-18, 10)))
	if a.alloc.Mismatch(a.cfg.Allocation.MismatchTolerance) {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
		split.WriteString("\n\n")
		split.WriteString(warnStyle.Render(truncStr(cli.MismatchWarning(a.alloc.Remainder()), innerW)))
	}
	b.WriteString(components.ContentCard("Split", split.String(), cw))

	return b.String()
}

// renderItemList renders one row per category: marker, color dot, name,
// stored amount with its mode, and the resolved money amount.
func (a App) renderItemList(innerW int) string {
	t := theme.Active

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	placeholderStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.alloc.Items) == 0 {
		return placeholderStyle.Render("No categories yet. Press [a] to add one.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("    %-*s %*s %*s  Mode", nameColW, "Name", amountColW, "Amount", amountColW, "Resolved")))
	b.WriteString("\n")

	for i, it := range a.alloc.Items {
		selected := i == a.cursor
		style := rowStyle
		if selected {
			style = selStyle
		}

		marker := style.Render("  ")
		if selected {
			marker = lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Render("▸ ")
		}
		dot := lipgloss.NewStyle().Foreground(t.SegmentColor(i)).Background(style.GetBackground()).Render("● ")

		var name string
		switch {
		case selected && a.editing == editName:
			name = a.input.View()
		case it.Name == "":
			name = placeholderStyle.Background(style.GetBackground()).Render(fmt.Sprintf("%-*s", nameColW, "Category name"))
		default:
			name = style.Render(fmt.Sprintf("%-*s", nameColW, truncStr(it.Name, nameColW)))
		}

		stored := cli.FormatMoney(it.Amount)
		mode := "$"
		if it.IsPercentage {
			stored = cli.FormatShare(it.Amount)
			mode = "%"
		}
		var amount string
		if selected && a.editing == editAmount {
			amount = " " + a.input.View()
		} else {
			amount = style.Render(fmt.Sprintf(" %*s", amountColW, stored))
		}

		line := marker + dot + name + amount +
			style.Render(fmt.Sprintf(" %*s  ", amountColW, cli.FormatMoney(a.alloc.EffectiveAmount(i)))) +
			modeStyle.Background(style.GetBackground()).Render(mode)

		if pad := innerW - lipgloss.Width(line); pad > 0 {
			line += style.Render(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
		if i < len(a.alloc.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
