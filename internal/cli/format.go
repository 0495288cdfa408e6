// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// FormatMoney formats a decimal amount with comma grouping and two decimal
// places, e.g. 1234567.5 -> "$1,234,567.50".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
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

// FormatDate renders a date in the canonical YYYY-MM-DD form.
// Zero dates render as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(model.DateLayout)
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatScore renders a risk score with its label, e.g. "75 (medium)".
func FormatScore(s model.CategoryScore) string {
	return fmt.Sprintf("%d (%s)", int(s), s.Label())
}

// FormatDelta formats a balance change with an explicit sign.
func FormatDelta(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + FormatMoney(d)
	}
	return FormatMoney(d)
}
