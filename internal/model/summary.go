package model

// Line is a line item resolved against the total, in display order.
type Line struct {
	Name    string
	Amount  float64 // effective absolute amount
	Percent float64 // share of the total, 0-100+; 0 when the total is 0
}

// SummaryStats holds the aggregate figures shown in the totals rows.
type SummaryStats struct {
	Total            float64
	Allocated        float64
	AllocatedPercent float64
	Remainder        float64
	RemainderPercent float64
	Items            int
}

// Lines resolves every item to its effective amount and share of the total.
func (a Allocation) Lines() []Line {
	lines := make([]Line, len(a.Items))
	for i, it := range a.Items {
		amt := EffectiveAmount(it, a.Total)
		lines[i] = Line{Name: it.Name, Amount: amt, Percent: percentOf(amt, a.Total)}
	}
	return lines
}

// Summary computes the totals and unallocated rows.
func (a Allocation) Summary() SummaryStats {
	allocated := a.TotalAllocated()
	rem := a.Total - allocated
	return SummaryStats{
		Total:            a.Total,
		Allocated:        allocated,
		AllocatedPercent: percentOf(allocated, a.Total),
		Remainder:        rem,
		RemainderPercent: percentOf(rem, a.Total),
		Items:            len(a.Items),
	}
}

func percentOf(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total * 100
}
