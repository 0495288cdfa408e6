// Package engine implements the cash-flow projection and risk-scoring core:
// baseline timeline generation, draft normalization, impact projection, and
// categorical risk scoring. Everything here is a pure function over immutable
// inputs; the engine does no I/O and holds no state, so concurrent callers
// need no coordination.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// Policy carries the injectable constants the engine scores against. These
// are organizational policy, not derived values; callers load them from
// config rather than relying on the demo defaults.
type Policy struct {
	InitialBalance  decimal.Decimal
	PayrollCap      decimal.Decimal
	FringeRate      decimal.Decimal // payroll benefits/tax surcharge fraction
	CashLowFraction decimal.Decimal // cash risk is medium below InitialBalance×this
	BiWeeklyPayDate time.Time
	MonthlyPayDate  time.Time
}

// DefaultPolicy returns the demo policy constants.
func DefaultPolicy() Policy {
	return Policy{
		InitialBalance:  decimal.NewFromInt(1_000_000),
		PayrollCap:      decimal.NewFromInt(350_000),
		FringeRate:      decimal.NewFromFloat(0.46),
		CashLowFraction: decimal.NewFromFloat(0.2),
		BiWeeklyPayDate: time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC),
		MonthlyPayDate:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

// PayDate returns the policy posting date for a pay cycle. Pay dates are
// fixed policy constants; they are not derived from the employee hire date.
func (p Policy) PayDate(cycle model.PayCycle) (time.Time, bool) {
	switch cycle {
	case model.CycleBiWeekly:
		return model.Day(p.BiWeeklyPayDate), true
	case model.CycleMonthly:
		return model.Day(p.MonthlyPayDate), true
	}
	return time.Time{}, false
}
