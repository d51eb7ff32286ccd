package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/bar"
	"github.com/theirongolddev/paysplit/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderWarning renders an advisory line in the warning color.
func RenderWarning(msg string) string {
	return warnStyle.Render(msg)
}

func tableRule(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
	return b.String()
}

// pad fills s to w visible columns; right aligns when right is set.
func pad(s string, w int, right bool) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(tableRule(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], false) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(tableRule(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(tableRule(widths, "├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Amount columns are right-aligned.
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], i > 0) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(tableRule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderSplitBar renders segments as a row of colored blocks. palette is
// indexed by Segment.Color; the remainder uses neutral. Cells not covered by
// any segment render as an empty track.
func RenderSplitBar(segs []bar.Segment, width int, palette []lipgloss.Color, neutral lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	widths := bar.Layout(segs, width)

	var b strings.Builder
	used := 0
	for i, s := range segs {
		if widths[i] == 0 {
			continue
		}
		color := neutral
		if !s.Remainder && len(palette) > 0 {
			color = palette[s.Color%len(palette)]
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", widths[i])))
		used += widths[i]
	}
	if used < width {
		b.WriteString(dimStyle.Render(strings.Repeat("░", width-used)))
	}
	return b.String()
}

// RenderLegend lists each segment's label next to a colored marker.
func RenderLegend(segs []bar.Segment, palette []lipgloss.Color, neutral lipgloss.Color) string {
	var b strings.Builder
	for _, s := range segs {
		color := neutral
		if !s.Remainder && len(palette) > 0 {
			color = palette[s.Color%len(palette)]
		}
		fmt.Fprintf(&b, "  %s %s\n",
			lipgloss.NewStyle().Foreground(color).Render("●"),
			mutedStyle.Render(s.Label))
	}
	return b.String()
}

// BreakdownTable builds the per-item breakdown with totals and unallocated
// rows. Percentages are shares of the total.
func BreakdownTable(a model.Allocation) Table {
	rows := make([][]string, 0, len(a.Items)+4)
	for _, l := range a.Lines() {
		rows = append(rows, []string{l.Name, FormatMoney(l.Amount), FormatShare(l.Percent)})
	}
	s := a.Summary()
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", FormatMoney(s.Allocated), FormatShare(s.AllocatedPercent)},
		[]string{"Unallocated", FormatMoney(s.Remainder), FormatShare(s.RemainderPercent)},
	)
	return Table{
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}
}
