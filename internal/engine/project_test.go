package engine

import (
	"testing"

	"cashlens/internal/model"

	"github.com/shopspring/decimal"
)

// weeklyBaseline starts on a Monday so its 7-day grid contains 2025-06-09.
func weeklyBaseline(t *testing.T) []model.BalanceSample {
	t.Helper()
	samples, err := Generate(
		mustDate(t, "2025-05-05"),
		mustDate(t, "2025-07-31"),
		dec("1000000"),
		7,
		ZeroDrift,
	)
	if err != nil {
		t.Fatalf("generate baseline: %v", err)
	}
	return samples
}

func TestProject_SubtractsOnMatchingDate(t *testing.T) {
	// A 50,000 purchase posting 2025-06-09 lowers exactly that sample.
	baseline := weeklyBaseline(t)
	tx := model.NormalizedTransaction{
		EffectiveAmount: dec("50000"),
		PostingDate:     mustDate(t, "2025-06-09"),
	}

	projected := Project(baseline, tx)
	if len(projected) != len(baseline) {
		t.Fatalf("len(projected) = %d, want %d", len(projected), len(baseline))
	}

	hits := 0
	for i, s := range projected {
		if model.SameDay(s.Date, tx.PostingDate) {
			hits++
			want := baseline[i].Balance.Sub(dec("50000"))
			if !s.Balance.Equal(want) {
				t.Errorf("balance at %s = %s, want %s", s.Date.Format(model.DateLayout), s.Balance, want)
			}
			continue
		}
		if !s.Balance.Equal(baseline[i].Balance) {
			t.Errorf("balance at %s changed: %s -> %s", s.Date.Format(model.DateLayout), baseline[i].Balance, s.Balance)
		}
	}
	if hits != 1 {
		t.Fatalf("matched %d samples, want 1", hits)
	}
}

func TestProject_NoMatchIsNoOp(t *testing.T) {
	// Posting date off the sampled grid leaves every balance untouched.
	baseline := weeklyBaseline(t)
	tx := model.NormalizedTransaction{
		EffectiveAmount: dec("50000"),
		PostingDate:     mustDate(t, "2025-06-10"),
	}

	projected := Project(baseline, tx)
	for i, s := range projected {
		if !s.Balance.Equal(baseline[i].Balance) {
			t.Errorf("balance at %s changed: %s -> %s", s.Date.Format(model.DateLayout), baseline[i].Balance, s.Balance)
		}
	}

	if Matches(baseline, tx) {
		t.Error("Matches = true for an off-grid posting date")
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	baseline := weeklyBaseline(t)
	before := make([]decimal.Decimal, len(baseline))
	for i, s := range baseline {
		before[i] = s.Balance
	}

	tx := model.NormalizedTransaction{
		EffectiveAmount: dec("999999"),
		PostingDate:     baseline[3].Date,
	}
	_ = Project(baseline, tx)

	for i, s := range baseline {
		if !s.Balance.Equal(before[i]) {
			t.Fatalf("input baseline mutated at index %d: %s -> %s", i, before[i], s.Balance)
		}
	}
}

func TestMatches(t *testing.T) {
	baseline := weeklyBaseline(t)

	on := model.NormalizedTransaction{PostingDate: mustDate(t, "2025-05-12")}
	if !Matches(baseline, on) {
		t.Error("Matches = false for an on-grid date")
	}

	off := model.NormalizedTransaction{PostingDate: mustDate(t, "2025-12-25")}
	if Matches(baseline, off) {
		t.Error("Matches = true for a date past the horizon")
	}
}

func BenchmarkProjectAndScore(b *testing.B) {
	start := mustDate(b, "2025-01-01")
	end := mustDate(b, "2027-12-31")
	baseline, err := Generate(start, end, dec("1000000"), 1, RandomDrift(7, dec("500")))
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	tx := model.NormalizedTransaction{
		EffectiveAmount: dec("146000"),
		PostingDate:     mustDate(b, "2026-06-15"),
	}
	pol := DefaultPolicy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		projected := Project(baseline, tx)
		if _, err := Score(projected, tx.EffectiveAmount, pol); err != nil {
			b.Fatal(err)
		}
	}
}
