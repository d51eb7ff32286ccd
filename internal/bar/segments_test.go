package bar

import (
	"math"
	"testing"

	"github.com/theirongolddev/paysplit/internal/model"
)

func TestSegmentsWithRemainder(t *testing.T) {
	a := model.New(1000).
		AddItem().UpdateName(0, "A").UpdateAmount(0, "300").
		AddItem().UpdateName(1, "B").ToggleMode(1).UpdateAmount(1, "20")

	segs := FromAllocation(a)
	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}

	if segs[0].Label != "A: $300.00 (30.0%)" {
		t.Errorf("segs[0].Label = %q", segs[0].Label)
	}
	if segs[1].Label != "B: $200.00 (20.0%)" {
		t.Errorf("segs[1].Label = %q", segs[1].Label)
	}
	rem := segs[2]
	if !rem.Remainder || rem.Color != NeutralColor {
		t.Fatalf("last segment = %+v, want neutral remainder", rem)
	}
	if math.Abs(rem.Fraction-0.5) > 1e-9 {
		t.Errorf("remainder fraction = %v, want 0.5", rem.Fraction)
	}
	if rem.Label != "Unallocated: $500.00 (50.0%)" {
		t.Errorf("remainder label = %q", rem.Label)
	}
}

func TestNoRemainderWhenFullyAllocated(t *testing.T) {
	a := model.New(500).AddItem().UpdateName(0, "A").UpdateAmount(0, "600")

	segs := FromAllocation(a)
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1 (no remainder)", len(segs))
	}
	if segs[0].Fraction != 1 {
		t.Fatalf("fraction = %v, want 1", segs[0].Fraction)
	}
}

func TestNoRemainderWhenOvercommitted(t *testing.T) {
	a := model.New(1000).AddItem().UpdateAmount(0, "900").SetTotal(600)

	for _, s := range FromAllocation(a) {
		if s.Remainder {
			t.Fatalf("overcommitted bar emitted remainder %+v", s)
		}
		if s.Fraction < 0 {
			t.Fatalf("negative fraction %+v", s)
		}
	}
}

func TestZeroTotalEmitsNoSegments(t *testing.T) {
	lines := []model.Line{{Name: "A", Amount: 10}}
	for _, total := range []float64{0, -5, math.NaN()} {
		if segs := Segments(lines, total, 10); len(segs) != 0 {
			t.Errorf("Segments(total=%v) = %d segments, want 0", total, len(segs))
		}
	}
}

func TestNegativeAmountsNeverProduceNegativeWidth(t *testing.T) {
	segs := Segments([]model.Line{{Name: "odd", Amount: -50}}, 100, -50)
	for _, s := range segs {
		if s.Fraction < 0 {
			t.Fatalf("segment %q fraction = %v", s.Name, s.Fraction)
		}
	}
}

func TestColorsCycleAndShiftOnRemove(t *testing.T) {
	a := model.New(1000)
	for i := 0; i < 10; i++ {
		a = a.AddItem().UpdateAmount(i, "10")
	}

	segs := FromAllocation(a)
	for i := 0; i < 10; i++ {
		if segs[i].Color != i%PaletteSize {
			t.Errorf("segs[%d].Color = %d, want %d", i, segs[i].Color, i%PaletteSize)
		}
	}

	a = a.UpdateName(3, "fourth").UpdateName(4, "fifth").RemoveItem(3)
	segs = FromAllocation(a)
	if segs[3].Name != "fifth" || segs[3].Color != 3 {
		t.Fatalf("after remove segs[3] = %+v, want fifth with color 3", segs[3])
	}
	if segs[8].Color != 0 {
		t.Fatalf("segs[8].Color = %d, want 0 (cycled)", segs[8].Color)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		fractions []float64
		width     int
		want      []int
	}{
		{"halves", []float64{0.5, 0.5}, 10, []int{5, 5}},
		{"thirds", []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 10, []int{3, 4, 3}},
		{"clipped", []float64{0.8, 0.5}, 10, []int{8, 2}},
		{"past edge", []float64{1.2, 0.3}, 10, []int{10, 0}},
		{"zero width", []float64{0.5}, 0, []int{0}},
		{"tiny", []float64{0.01, 0.99}, 20, []int{0, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := make([]Segment, len(tt.fractions))
			for i, f := range tt.fractions {
				segs[i] = Segment{Fraction: f}
			}
			got := Layout(segs, tt.width)
			sum := 0
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("width[%d] = %d, want %d", i, got[i], tt.want[i])
				}
				if got[i] < 0 {
					t.Errorf("width[%d] negative", i)
				}
				sum += got[i]
			}
			if sum > tt.width && tt.width > 0 {
				t.Errorf("sum %d exceeds width %d", sum, tt.width)
			}
		})
	}
}

func TestLabelNonFinite(t *testing.T) {
	if got := Label("A", math.Inf(1), 100); got != "A: $+Inf (+Inf%)" {
		t.Fatalf("Label(+Inf) = %q", got)
	}
}
