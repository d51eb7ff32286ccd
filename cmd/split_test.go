package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseItemArg(t *testing.T) {
	tests := []struct {
		in      string
		want    itemArg
		wantErr bool
	}{
		{in: "Rent=1200", want: itemArg{Name: "Rent", Amount: "1200"}},
		{in: " Savings = 20% ", want: itemArg{Name: "Savings", Amount: "20", Percent: true}},
		{in: "a=b=5", want: itemArg{Name: "a=b", Amount: "5"}},
		{in: "=10", want: itemArg{Amount: "10"}},
		{in: "Food", wantErr: true},
		{in: "Food=lots", wantErr: true},
		{in: "Food=%", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseItemArg(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseItemArg(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseItemArg(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("parseItemArg(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildAllocation(t *testing.T) {
	a, err := buildAllocation(1000, []string{"A=300", "B=20%", "C=5000"})
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(a.Items))
	}
	if !a.Items[1].IsPercentage || a.EffectiveAmount(1) != 200 {
		t.Fatalf("B = %+v, want 20%% of 1000", a.Items[1])
	}
	if a.Items[2].Amount != 1000 {
		t.Fatalf("C = %v, want clamped to 1000", a.Items[2].Amount)
	}

	if _, err := buildAllocation(1000, []string{"broken"}); err == nil {
		t.Fatal("expected error for malformed item")
	}
}

func TestRenderSplitWarnsOnMismatch(t *testing.T) {
	a, err := buildAllocation(1000, []string{"A=300", "B=20%"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderSplit(&buf, a, 40, 0)
	out := buf.String()

	for _, want := range []string{
		"Paycheck $1000.00",
		"A: $300.00 (30.0%)",
		"B: $200.00 (20.0%)",
		"Unallocated: $500.00 (50.0%)",
		"Total amount should equal paycheck. Remaining: $500.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderSplitBalanced(t *testing.T) {
	a, err := buildAllocation(500, []string{"All=100%"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderSplit(&buf, a, 20, 0)
	if strings.Contains(buf.String(), "Total amount should equal paycheck") {
		t.Fatal("balanced split printed a mismatch warning")
	}
}
