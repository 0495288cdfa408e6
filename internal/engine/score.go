package engine

import (
	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// Score derives the categorical risk assessment from a projected timeline
// and the transaction's effective amount.
//
// Cash risk looks at the projected minimum balance: negative is high, below
// the policy low-water fraction of the initial balance is medium, otherwise
// low. Budget risk is high when the effective amount exceeds the payroll
// cap, otherwise low. The overall score is the worse of the two.
func Score(projected []model.BalanceSample, effectiveAmount decimal.Decimal, pol Policy) (model.RiskAssessment, error) {
	if len(projected) == 0 {
		return model.RiskAssessment{}, ErrEmptyTimeline
	}

	minBalance := projected[0].Balance
	for _, s := range projected[1:] {
		if s.Balance.LessThan(minBalance) {
			minBalance = s.Balance
		}
	}

	lowWater := pol.InitialBalance.Mul(pol.CashLowFraction)

	cash := model.RiskLow
	switch {
	case minBalance.IsNegative():
		cash = model.RiskHigh
	case minBalance.LessThan(lowWater):
		cash = model.RiskMedium
	}

	budget := model.RiskLow
	if effectiveAmount.GreaterThan(pol.PayrollCap) {
		budget = model.RiskHigh
	}

	overall := cash
	if budget > overall {
		overall = budget
	}

	return model.RiskAssessment{Cash: cash, Budget: budget, Overall: overall}, nil
}

// MinBalance returns the lowest balance on a timeline. It reports false for
// an empty timeline.
func MinBalance(samples []model.BalanceSample) (decimal.Decimal, bool) {
	if len(samples) == 0 {
		return decimal.Zero, false
	}
	min := samples[0].Balance
	for _, s := range samples[1:] {
		if s.Balance.LessThan(min) {
			min = s.Balance
		}
	}
	return min, true
}
