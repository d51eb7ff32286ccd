package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal magnitudes outside this range can't be a finite, non-zero float64.
// Checking before conversion keeps huge exponents like "1e2000000000" from
// expanding the power of ten.
const (
	maxMagnitude = 309
	minMagnitude = -330
)

// ParseAmount converts user input to a number. Plain decimals and exponent
// notation ("1.5e3") are accepted. Empty input, anything that does not parse
// and values that overflow a float64 yield 0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsZero() {
		return 0
	}

	mag := int64(d.Exponent()) + int64(d.NumDigits())
	if mag > maxMagnitude || mag < minMagnitude {
		return 0
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// FormatFixed renders v rounded to places decimals. Non-finite values,
// which decimal can't represent, fall back to fmt.
func FormatFixed(v float64, places int32) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprintf("%.*f", int(places), v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
