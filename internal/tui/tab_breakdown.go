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

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)
	s := a.alloc.Summary()

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if s.Total <= 0 {
		return components.ContentCard("Breakdown", dimStyle.Render("Enter a paycheck amount on the Split tab."), cw)
	}

	mismatch := a.alloc.Mismatch(a.cfg.Allocation.MismatchTolerance)
	metrics := []components.Metric{
		{Label: "Paycheck", Value: cli.FormatMoney(s.Total), Delta: fmt.Sprintf("%d categories", s.Items)},
		{Label: "Allocated", Value: cli.FormatMoney(s.Allocated), Delta: cli.FormatShare(s.AllocatedPercent)},
		{Label: "Unallocated", Value: cli.FormatMoney(s.Remainder), Delta: cli.FormatShare(s.RemainderPercent), Warn: mismatch},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	segs := bar.FromAllocation(a.alloc)
	var chart strings.Builder
	chart.WriteString(components.SplitBar(segs, a.barWidth(cw), -1))
	chart.WriteString("\n")
	chart.WriteString(components.Legend(segs, innerW))
	b.WriteString(components.ContentCard("Allocation", chart.String(), cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Summary", a.renderSummaryTable(innerW, mismatch), cw))
	return b.String()
}

func (a App) renderSummaryTable(innerW int, mismatch bool) string {
	t := theme.Active
	s := a.alloc.Summary()

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	nameW := max(innerW-2-amountColW-10, 8)
	row := func(name, amount, share string) string {
		return fmt.Sprintf("%-*s %*s %8s", nameW, truncStr(name, nameW), amountColW, amount, share)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + row("Category", "Amount", "Share")))
	b.WriteString("\n")

	for i, l := range a.alloc.Lines() {
		name := l.Name
		style := rowStyle
		if name == "" {
			name = "(unnamed)"
			style = mutedStyle
		}
		dot := lipgloss.NewStyle().Foreground(t.SegmentColor(i)).Background(t.Surface).Render("● ")
		b.WriteString(dot + style.Render(row(name, cli.FormatMoney(l.Amount), cli.FormatShare(l.Percent))))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(innerW, lipgloss.Width(row("", "", ""))+2))))
	b.WriteString("\n")
	b.WriteString(spaceStyle.Render("  ") + totalStyle.Render(row("Total", cli.FormatMoney(s.Allocated), cli.FormatShare(s.AllocatedPercent))))
	b.WriteString("\n")

	remStyle := rowStyle
	if mismatch {
		remStyle = lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	}
	b.WriteString(spaceStyle.Render("  ") + remStyle.Render(row(bar.RemainderName, cli.FormatMoney(s.Remainder), cli.FormatShare(s.RemainderPercent))))

	if mismatch {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
		b.WriteString("\n\n")
		b.WriteString(warnStyle.Render(truncStr(cli.MismatchWarning(s.Remainder), innerW)))
	}
	return b.String()
}
