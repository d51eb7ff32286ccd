// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/paysplit/internal/model"
)

// FormatMoney formats an amount as "$1234.50", always with two decimals.
func FormatMoney(v float64) string {
	return "$" + model.FormatFixed(v, 2)
}

// FormatShare formats a 0-100 share with one decimal, e.g. "12.5%".
func FormatShare(pct float64) string {
	return model.FormatFixed(pct, 1) + "%"
}

// MismatchWarning is shown whenever the allocated sum differs from the total.
func MismatchWarning(remainder float64) string {
	return "Total amount should equal paycheck. Remaining: " + FormatMoney(remainder)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
