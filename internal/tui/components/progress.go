package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

// ColorForShare returns the gauge color for an allocated share of the total:
// muted while filling up, green when balanced, red when overcommitted.
func ColorForShare(share float64) lipgloss.Color {
	t := theme.Active
	switch {
	case share > 1:
		return t.Red
	case share == 1:
		return t.Green
	case share >= 0.9:
		return t.Yellow
	default:
		return t.Accent
	}
}

// AllocationGauge renders a labeled gauge of allocated/total. The bar is
// capped at full; the percentage shows the real share.
func AllocationGauge(allocated, total float64, labelW, barWidth int) string {
	t := theme.Active

	share := 0.0
	if total > 0 {
		share = allocated / total
	}
	shown := min(max(share, 0), 1)
	color := ColorForShare(share)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, "Allocated")) +
		spaceStyle.Render(" ") +
		bar.ViewAs(shown) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", share*100))
}
