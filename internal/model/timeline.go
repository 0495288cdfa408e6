package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format used throughout cashlens.
const DateLayout = "2006-01-02"

// BalanceSample is one point on a cash-balance timeline.
type BalanceSample struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Day truncates a timestamp to a calendar date (UTC midnight). All timeline
// and posting dates pass through here so equality checks are exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
