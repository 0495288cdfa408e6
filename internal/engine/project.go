package engine

import (
	"cashlens/internal/model"
)

// Project merges one normalized transaction into a copy of the baseline.
// Every sample on the posting date has the effective amount subtracted; all
// other samples pass through unchanged. The baseline itself is never
// mutated.
//
// A posting date with no matching sample (outside the range, or off the
// sampling step) leaves the projection identical to the baseline. That
// silent pass-through is intentional and callers may compare the two
// timelines to detect it.
func Project(baseline []model.BalanceSample, tx model.NormalizedTransaction) []model.BalanceSample {
	projected := make([]model.BalanceSample, len(baseline))
	for i, s := range baseline {
		if model.SameDay(s.Date, tx.PostingDate) {
			s.Balance = s.Balance.Sub(tx.EffectiveAmount)
		}
		projected[i] = s
	}
	return projected
}

// Matches reports whether the projection actually landed on a baseline
// sample, i.e. whether some sample shares the posting date.
func Matches(baseline []model.BalanceSample, tx model.NormalizedTransaction) bool {
	for _, s := range baseline {
		if model.SameDay(s.Date, tx.PostingDate) {
			return true
		}
	}
	return false
}
