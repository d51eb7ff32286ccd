// Package bar computes the proportional split bar: one segment per line item
// plus an unallocated remainder, and their integer cell widths.
package bar

import (
	"fmt"
	"math"

	"github.com/theirongolddev/paysplit/internal/model"
)

// PaletteSize is the number of item colors; assignment cycles through them.
const PaletteSize = 8

// NeutralColor is the palette index of the remainder segment.
const NeutralColor = -1

// RemainderName labels the unallocated segment.
const RemainderName = "Unallocated"

// Segment is one region of the bar.
type Segment struct {
	Name      string
	Amount    float64
	Fraction  float64 // share of the total width, never negative
	Color     int     // index into the palette, or NeutralColor
	Remainder bool
	Label     string
}

// Segments derives the bar from resolved lines. A remainder segment is
// appended only when allocated < total. A non-positive total yields no
// segments since no width can be computed.
func Segments(lines []model.Line, total, allocated float64) []Segment {
	if !(total > 0) || math.IsInf(total, 0) {
		return nil
	}

	segs := make([]Segment, 0, len(lines)+1)
	for i, l := range lines {
		segs = append(segs, Segment{
			Name:     l.Name,
			Amount:   l.Amount,
			Fraction: fraction(l.Amount, total),
			Color:    i % PaletteSize,
			Label:    Label(l.Name, l.Amount, total),
		})
	}

	if allocated < total {
		rem := total - allocated
		segs = append(segs, Segment{
			Name:      RemainderName,
			Amount:    rem,
			Fraction:  fraction(rem, total),
			Color:     NeutralColor,
			Remainder: true,
			Label:     Label(RemainderName, rem, total),
		})
	}
	return segs
}

// FromAllocation is Segments over a model snapshot.
func FromAllocation(a model.Allocation) []Segment {
	return Segments(a.Lines(), a.Total, a.TotalAllocated())
}

// Label formats "{name}: $amount (pct%)" with two and one decimals.
func Label(name string, amount, total float64) string {
	pct := 0.0
	if total > 0 {
		pct = amount / total * 100
	}
	return fmt.Sprintf("%s: $%s (%s%%)", name,
		model.FormatFixed(amount, 2),
		model.FormatFixed(pct, 1))
}

func fraction(amount, total float64) float64 {
	f := amount / total
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}

// Layout converts segment fractions into cell widths for a bar that is width
// cells wide. Edges are placed by rounding the cumulative fraction, so the
// widths add up to the rounded total share and never exceed width; anything
// past the right edge is clipped.
func Layout(segs []Segment, width int) []int {
	widths := make([]int, len(segs))
	if width <= 0 {
		return widths
	}
	cum := 0.0
	prev := 0
	for i, s := range segs {
		cum += s.Fraction
		edge := int(math.Round(cum * float64(width)))
		if edge > width {
			edge = width
		}
		if edge < prev {
			edge = prev
		}
		widths[i] = edge - prev
		prev = edge
	}
	return widths
}
