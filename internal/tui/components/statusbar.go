package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a short status on the right.
func RenderStatusBar(width int, hints, status string, warn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	statusStyle := style
	if warn {
		statusStyle = statusStyle.Foreground(t.Orange)
	}

	left := style.Render(" " + hints)
	right := statusStyle.Render(status + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + style.Render(strings.Repeat(" ", padding)) + right
}
