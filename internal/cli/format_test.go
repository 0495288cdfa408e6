package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"25", "$25.00"},
		{"1000", "$1,000.00"},
		{"1234567.5", "$1,234,567.50"},
		{"-50000", "-$50,000.00"},
		{"146000", "$146,000.00"},
	}

	for _, tc := range cases {
		got := FormatMoney(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2025-06-09" {
		t.Errorf("FormatDate = %q, want 2025-06-09", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want -", got)
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(model.RiskMedium); got != "75 (medium)" {
		t.Errorf("FormatScore = %q, want \"75 (medium)\"", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.46); got != "46%" {
		t.Errorf("FormatPercent(0.46) = %q, want 46%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(decimal.RequireFromString("500")); got != "+$500.00" {
		t.Errorf("FormatDelta(500) = %q", got)
	}
	if got := FormatDelta(decimal.RequireFromString("-500")); got != "-$500.00" {
		t.Errorf("FormatDelta(-500) = %q", got)
	}
}
