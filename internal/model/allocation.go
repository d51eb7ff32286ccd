// Package model holds the paycheck allocation state and its update operations.
package model

import (
	"math"
	"slices"

	"github.com/google/uuid"
)

// MaxPercent is the upper clamp for percentage-mode line items.
const MaxPercent = 100.0

// MaxTotal caps the paycheck. Items are clamped to the total, so any
// realistic number of them sums without overflowing a float64.
const MaxTotal = 1e15

// LineItem is one named slice of the total. Amount is a percentage of the
// total when IsPercentage is set, otherwise an absolute amount.
type LineItem struct {
	ID           string
	Name         string
	Amount       float64
	IsPercentage bool
}

// EffectiveAmount resolves the item to an absolute amount against total.
func EffectiveAmount(item LineItem, total float64) float64 {
	if item.IsPercentage {
		return item.Amount / 100 * total
	}
	return item.Amount
}

// Allocation is an immutable snapshot of the total and its line items.
// Every operation returns a new snapshot and leaves the receiver untouched.
// Items are addressed by position; out-of-range indices are no-ops.
type Allocation struct {
	Total float64
	Items []LineItem
}

// New returns an empty allocation with the given total.
func New(total float64) Allocation {
	return Allocation{}.SetTotal(total)
}

func (a Allocation) valid(index int) bool {
	return index >= 0 && index < len(a.Items)
}

// withItem returns a copy of a with items[index] replaced by fn's result.
func (a Allocation) withItem(index int, fn func(LineItem) LineItem) Allocation {
	if !a.valid(index) {
		return a
	}
	items := slices.Clone(a.Items)
	items[index] = fn(items[index])
	a.Items = items
	return a
}

// SetTotal replaces the total. Existing items are not re-validated, so
// absolute items above a lowered total stay as they are. Values above
// MaxTotal are capped.
func (a Allocation) SetTotal(value float64) Allocation {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		value = 0
	}
	value = min(value, MaxTotal)
	a.Total = value
	return a
}

// SetTotalInput parses raw user input and replaces the total.
func (a Allocation) SetTotalInput(raw string) Allocation {
	return a.SetTotal(ParseAmount(raw))
}

// AddItem appends a blank absolute-mode item.
func (a Allocation) AddItem() Allocation {
	items := make([]LineItem, len(a.Items), len(a.Items)+1)
	copy(items, a.Items)
	a.Items = append(items, LineItem{ID: uuid.NewString()})
	return a
}

// RemoveItem deletes the item at index, shifting later items down.
func (a Allocation) RemoveItem(index int) Allocation {
	if !a.valid(index) {
		return a
	}
	a.Items = slices.Delete(slices.Clone(a.Items), index, index+1)
	return a
}

// UpdateName sets the name of the item at index. Any string is accepted.
func (a Allocation) UpdateName(index int, value string) Allocation {
	return a.withItem(index, func(it LineItem) LineItem {
		it.Name = value
		return it
	})
}

// UpdateAmount parses raw and stores it clamped to the item's mode range.
func (a Allocation) UpdateAmount(index int, raw string) Allocation {
	return a.SetAmount(index, ParseAmount(raw))
}

// SetAmount stores value clamped to [0, 100] for percentage items and to
// [0, Total] for absolute items.
func (a Allocation) SetAmount(index int, value float64) Allocation {
	return a.withItem(index, func(it LineItem) LineItem {
		ceiling := a.Total
		if it.IsPercentage {
			ceiling = MaxPercent
		}
		it.Amount = clamp(value, 0, ceiling)
		return it
	})
}

// ToggleMode flips the item between percentage and absolute mode, converting
// the stored amount so the effective amount is unchanged. With a zero total
// there is no percentage to convert to, so the stored amount becomes 0.
func (a Allocation) ToggleMode(index int) Allocation {
	return a.withItem(index, func(it LineItem) LineItem {
		if it.IsPercentage {
			it.Amount = it.Amount / 100 * a.Total
		} else if a.Total > 0 {
			it.Amount = it.Amount / a.Total * 100
		} else {
			it.Amount = 0
		}
		it.IsPercentage = !it.IsPercentage
		return it
	})
}

// EffectiveAmount returns the absolute amount of the item at index, or 0.
func (a Allocation) EffectiveAmount(index int) float64 {
	if !a.valid(index) {
		return 0
	}
	return EffectiveAmount(a.Items[index], a.Total)
}

// TotalAllocated sums the effective amounts of all items.
func (a Allocation) TotalAllocated() float64 {
	sum := 0.0
	for _, it := range a.Items {
		sum += EffectiveAmount(it, a.Total)
	}
	return sum
}

// Remainder is the unallocated part of the total. Negative when items
// overcommit, which happens when the total is lowered after edits.
func (a Allocation) Remainder() float64 {
	return a.Total - a.TotalAllocated()
}

// Mismatch reports whether the allocated sum differs from the total by more
// than tolerance. A zero tolerance is an exact comparison.
func (a Allocation) Mismatch(tolerance float64) bool {
	allocated := a.TotalAllocated()
	if tolerance <= 0 {
		return allocated != a.Total
	}
	return math.Abs(allocated-a.Total) > tolerance
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
