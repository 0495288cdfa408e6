package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// DriftFunc returns the amount the balance drops between consecutive
// samples. It is how a baseline's shape is injected: zero for flat
// deterministic baselines, a seeded random draw for demo data, or anything
// a caller derives from a real forecast.
type DriftFunc func() decimal.Decimal

// ZeroDrift produces a flat baseline. Used for deterministic runs and tests.
func ZeroDrift() decimal.Decimal {
	return decimal.Zero
}

// RandomDrift returns a seeded drift source drawing uniformly from [0, max).
// It only exists to seed demonstration baselines; production callers should
// supply a real balance series instead.
func RandomDrift(seed int64, max decimal.Decimal) DriftFunc {
	rng := rand.New(rand.NewSource(seed))
	return func() decimal.Decimal {
		return max.Mul(decimal.NewFromFloat(rng.Float64()))
	}
}

// Generate produces the baseline timeline: one sample at start, then one
// every stepDays until past end. A sample landing exactly on end is
// included. Each sample's balance is the previous balance minus one drift
// draw. Sample dates are strictly increasing and unique.
func Generate(start, end time.Time, startingBalance decimal.Decimal, stepDays int, drift DriftFunc) ([]model.BalanceSample, error) {
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s after end %s",
			ErrInvalidRange, start.Format(model.DateLayout), end.Format(model.DateLayout))
	}
	if stepDays <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d days", ErrInvalidRange, stepDays)
	}

	var samples []model.BalanceSample
	balance := startingBalance
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, stepDays) {
		samples = append(samples, model.BalanceSample{Date: cur, Balance: balance})
		balance = balance.Sub(drift())
	}
	return samples, nil
}
