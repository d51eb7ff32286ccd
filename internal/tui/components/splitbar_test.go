package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/bar"
	"github.com/theirongolddev/paysplit/internal/model"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

func sampleSegments() []bar.Segment {
	a := model.New(1000).
		AddItem().UpdateName(0, "Rent").UpdateAmount(0, "300").
		AddItem().UpdateName(1, "Savings").ToggleMode(1).UpdateAmount(1, "20")
	return bar.FromAllocation(a)
}

func TestSplitBarRowsHaveFullWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := SplitBar(sampleSegments(), 50, 1)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (two bar rows + marker)", len(rows))
	}
	for i, r := range rows {
		if w := lipgloss.Width(r); w != 50 {
			t.Errorf("row %d width = %d, want 50", i, w)
		}
	}
	if !strings.Contains(rows[2], "▲") {
		t.Error("marker row has no marker for the selected segment")
	}
}

func TestSplitBarNoSelection(t *testing.T) {
	theme.SetActive("terminal")
	defer theme.SetActive("flexoki-dark")

	rows := strings.Split(SplitBar(sampleSegments(), 30, -1), "\n")
	if strings.Contains(rows[2], "▲") {
		t.Error("marker shown with no selection")
	}
}

func TestSplitBarEmptyTrack(t *testing.T) {
	theme.SetActive("flexoki-dark")

	rows := strings.Split(SplitBar(nil, 20, -1), "\n")
	if lipgloss.Width(rows[0]) != 20 || !strings.Contains(rows[0], "░") {
		t.Fatalf("empty bar row = %q", rows[0])
	}
	if SplitBar(nil, 0, -1) != "" {
		t.Fatal("zero-width bar should render nothing")
	}
}

func TestLegendTruncates(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := Legend(sampleSegments(), 16)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("legend lines = %d, want 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w > 16 {
			t.Errorf("legend line %d width = %d, want <= 16", i, w)
		}
	}
}

func TestAllocationGaugeWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, allocated := range []float64{0, 500, 1000, 1500} {
		out := AllocationGauge(allocated, 1000, 10, 20)
		// label + space + bar + space + "100.0%"
		if w := lipgloss.Width(out); w != 10+1+20+1+6 {
			t.Errorf("allocated=%v width = %d, want 38", allocated, w)
		}
	}
}

func TestColorForShare(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	if ColorForShare(1.2) != th.Red || ColorForShare(1) != th.Green || ColorForShare(0.2) != th.Accent {
		t.Fatal("ColorForShare picked the wrong colors")
	}
}
