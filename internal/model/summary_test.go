package model

import (
	"math"
	"testing"
	"time"
)

func TestLinesResolvesEffectiveAmounts(t *testing.T) {
	a := New(1000).
		AddItem().UpdateName(0, "Rent").UpdateAmount(0, "300").
		AddItem().UpdateName(1, "Savings").ToggleMode(1).UpdateAmount(1, "20")

	lines := a.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Name != "Rent" || lines[0].Amount != 300 || !approx(lines[0].Percent, 30) {
		t.Errorf("lines[0] = %+v", lines[0])
	}
	if lines[1].Name != "Savings" || !approx(lines[1].Amount, 200) || !approx(lines[1].Percent, 20) {
		t.Errorf("lines[1] = %+v", lines[1])
	}
}

func TestSummaryZeroTotal(t *testing.T) {
	s := New(0).AddItem().Summary()

	if s.Items != 1 {
		t.Fatalf("Items = %d, want 1", s.Items)
	}
	if s.AllocatedPercent != 0 || s.RemainderPercent != 0 {
		t.Fatalf("percentages with zero total = %+v, want 0", s)
	}
}

func TestSummaryOvercommitted(t *testing.T) {
	s := New(1000).AddItem().UpdateAmount(0, "900").SetTotal(600).Summary()

	if s.Remainder != -300 {
		t.Fatalf("Remainder = %v, want -300", s.Remainder)
	}
	if !approx(s.AllocatedPercent, 150) {
		t.Fatalf("AllocatedPercent = %v, want 150", s.AllocatedPercent)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"42", 42},
		{" 42.5 ", 42.5},
		{"-3", -3},
		{"1.5e3", 1500},
		{"12abc", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e308", 1e308},
		{"1e309", 0},
		{"-1e400", 0},
		{"1e2000000000", 0},
		{"1e-2000000000", 0},
		{"0e2000000000", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountHugeExponentIsFast(t *testing.T) {
	start := time.Now()
	for _, in := range []string{"1e10000000", "1e100000000", "9e2147483647", "1e-2147483648"} {
		if got := ParseAmount(in); got != 0 {
			t.Errorf("ParseAmount(%q) = %v, want 0", in, got)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("parsing huge exponents took %v", elapsed)
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   string
	}{
		{1234.5, 2, "1234.50"},
		{33.333, 1, "33.3"},
		{math.Inf(1), 2, "+Inf"},
		{math.Inf(-1), 2, "-Inf"},
		{math.NaN(), 1, "NaN"},
	}
	for _, tt := range tests {
		if got := FormatFixed(tt.in, tt.places); got != tt.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestHugeTotalsStayFinite(t *testing.T) {
	a := New(1.5e308).AddItem().AddItem().
		UpdateAmount(0, "1.5e308").UpdateAmount(1, "1e15")

	if a.Total != MaxTotal {
		t.Fatalf("Total = %v, want capped at %v", a.Total, MaxTotal)
	}
	s := a.Summary()
	for name, v := range map[string]float64{
		"Allocated":        s.Allocated,
		"Remainder":        s.Remainder,
		"AllocatedPercent": s.AllocatedPercent,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("%s = %v, want finite", name, v)
		}
	}
	if s.Allocated != 2*MaxTotal || s.Remainder != -MaxTotal {
		t.Fatalf("Allocated = %v, Remainder = %v", s.Allocated, s.Remainder)
	}
}
