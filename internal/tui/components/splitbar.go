package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/bar"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

// SplitBar renders the segmented allocation bar, two rows tall, followed by a
// marker row under the selected segment (selected < 0 for none). Cells not
// covered by any segment show the empty track.
func SplitBar(segs []bar.Segment, width, selected int) string {
	t := theme.Active
	if width <= 0 {
		return ""
	}

	widths := bar.Layout(segs, width)
	trackStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	var row, marker strings.Builder
	used := 0
	for i, s := range segs {
		w := widths[i]
		if w == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(t.SegmentColor(s.Color)).Background(t.Surface)
		row.WriteString(style.Render(strings.Repeat("█", w)))

		if i == selected && !s.Remainder {
			left := (w - 1) / 2
			marker.WriteString(blank.Render(strings.Repeat(" ", left)))
			marker.WriteString(markerStyle.Render("▲"))
			marker.WriteString(blank.Render(strings.Repeat(" ", w-left-1)))
		} else {
			marker.WriteString(blank.Render(strings.Repeat(" ", w)))
		}
		used += w
	}
	if used < width {
		row.WriteString(trackStyle.Render(strings.Repeat("░", width-used)))
		marker.WriteString(blank.Render(strings.Repeat(" ", width-used)))
	}

	line := row.String()
	return line + "\n" + line + "\n" + marker.String()
}

// Legend renders one line per segment: a colored dot and its label,
// truncated to width.
func Legend(segs []bar.Segment, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	lines := make([]string, 0, len(segs))
	for _, s := range segs {
		dot := lipgloss.NewStyle().Foreground(t.SegmentColor(s.Color)).Background(t.Surface).Render("● ")
		label := s.Label
		if lipgloss.Width(label) > width-2 {
			label = truncate(label, width-2)
		}
		lines = append(lines, dot+labelStyle.Render(label))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
