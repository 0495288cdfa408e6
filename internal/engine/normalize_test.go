package engine

import (
	"errors"
	"testing"

	"cashlens/internal/model"
)

func intPtr(n int) *int { return &n }

func TestNormalize_PurchaseWithDeliveryAndTerms(t *testing.T) {
	// Delivery 2025-05-10 + net-30 terms posts on 2025-06-09.
	draft := model.TransactionDraft{
		Type:             model.TypePurchase,
		Amount:           dec("50000"),
		DeliveryDate:     mustDate(t, "2025-05-10"),
		PaymentTermsDays: intPtr(30),
	}

	tx, err := Normalize(draft, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.PostingDate.Equal(mustDate(t, "2025-06-09")) {
		t.Errorf("posting date = %s, want 2025-06-09", tx.PostingDate.Format(model.DateLayout))
	}
	if !tx.EffectiveAmount.Equal(dec("50000")) {
		t.Errorf("effective amount = %s, want 50000 (face value)", tx.EffectiveAmount)
	}
	if !tx.Fringe.IsZero() {
		t.Errorf("fringe = %s, want 0 for a purchase", tx.Fringe)
	}
}

func TestNormalize_PurchaseWithoutTermsUsesRequestDate(t *testing.T) {
	draft := model.TransactionDraft{
		Type:        model.TypePurchase,
		Amount:      dec("12000"),
		RequestDate: mustDate(t, "2025-06-02"),
		// delivery date set but terms missing: falls back to request date
		DeliveryDate: mustDate(t, "2025-06-20"),
	}

	tx, err := Normalize(draft, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.PostingDate.Equal(mustDate(t, "2025-06-02")) {
		t.Errorf("posting date = %s, want request date 2025-06-02", tx.PostingDate.Format(model.DateLayout))
	}
}

func TestNormalize_PayrollBiWeekly(t *testing.T) {
	// Scenario: payroll 100,000 bi-weekly: posts on the policy pay date
	// with effective 146,000 and fringe 46,000.
	draft := model.TransactionDraft{
		Type:     model.TypePayroll,
		Amount:   dec("100000"),
		PayCycle: model.CycleBiWeekly,
	}

	pol := DefaultPolicy()
	tx, err := Normalize(draft, pol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.PostingDate.Equal(model.Day(pol.BiWeeklyPayDate)) {
		t.Errorf("posting date = %s, want policy bi-weekly pay date", tx.PostingDate.Format(model.DateLayout))
	}
	if !tx.EffectiveAmount.Equal(dec("146000")) {
		t.Errorf("effective amount = %s, want 146000", tx.EffectiveAmount)
	}
	if !tx.Fringe.Equal(dec("46000")) {
		t.Errorf("fringe = %s, want 46000", tx.Fringe)
	}
}

func TestNormalize_PayrollMonthly(t *testing.T) {
	draft := model.TransactionDraft{
		Type:     model.TypePayroll,
		Amount:   dec("300000"),
		PayCycle: model.CycleMonthly,
	}

	pol := DefaultPolicy()
	tx, err := Normalize(draft, pol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.PostingDate.Equal(model.Day(pol.MonthlyPayDate)) {
		t.Errorf("posting date = %s, want policy month-end pay date", tx.PostingDate.Format(model.DateLayout))
	}
	if !tx.EffectiveAmount.Equal(dec("438000")) {
		t.Errorf("effective amount = %s, want 438000", tx.EffectiveAmount)
	}
}

func TestNormalize_FringeExactness(t *testing.T) {
	// Decimal math keeps amount×1.46 exact even for awkward amounts.
	draft := model.TransactionDraft{
		Type:     model.TypePayroll,
		Amount:   dec("123456.78"),
		PayCycle: model.CycleBiWeekly,
	}

	tx, err := Normalize(draft, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.EffectiveAmount.Equal(dec("180246.8988")) {
		t.Errorf("effective amount = %s, want 180246.8988", tx.EffectiveAmount)
	}
	if !tx.Fringe.Equal(dec("56790.1188")) {
		t.Errorf("fringe = %s, want 56790.1188", tx.Fringe)
	}
}

func TestNormalize_TravelAndContractUseRequestDate(t *testing.T) {
	for _, typ := range []model.TransactionType{model.TypeTravel, model.TypeContract} {
		draft := model.TransactionDraft{
			Type:        typ,
			Amount:      dec("8000"),
			RequestDate: mustDate(t, "2025-05-15"),
		}
		tx, err := Normalize(draft, DefaultPolicy())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", typ, err)
		}
		if !tx.PostingDate.Equal(mustDate(t, "2025-05-15")) {
			t.Errorf("%s: posting date = %s, want 2025-05-15", typ, tx.PostingDate.Format(model.DateLayout))
		}
		if !tx.EffectiveAmount.Equal(dec("8000")) {
			t.Errorf("%s: effective amount = %s, want 8000", typ, tx.EffectiveAmount)
		}
	}
}

func TestNormalize_IncompleteDrafts(t *testing.T) {
	cases := []struct {
		name  string
		draft model.TransactionDraft
	}{
		{"unknown type", model.TransactionDraft{Type: "Lease", Amount: dec("100")}},
		{"unknown pay cycle", model.TransactionDraft{Type: model.TypePayroll, Amount: dec("100"), PayCycle: "Weekly"}},
		{"payroll empty cycle", model.TransactionDraft{Type: model.TypePayroll, Amount: dec("100")}},
		{"travel missing request date", model.TransactionDraft{Type: model.TypeTravel, Amount: dec("100")}},
		{"contract missing request date", model.TransactionDraft{Type: model.TypeContract, Amount: dec("100")}},
		{"purchase missing all dates", model.TransactionDraft{Type: model.TypePurchase, Amount: dec("100")}},
		{"negative amount", model.TransactionDraft{Type: model.TypeTravel, Amount: dec("-5"), RequestDate: mustDate(t, "2025-05-01")}},
		{"negative terms", model.TransactionDraft{
			Type: model.TypePurchase, Amount: dec("100"),
			DeliveryDate: mustDate(t, "2025-05-01"), PaymentTermsDays: intPtr(-1),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.draft, DefaultPolicy())
			if !errors.Is(err, ErrIncompleteDraft) {
				t.Fatalf("err = %v, want ErrIncompleteDraft", err)
			}
		})
	}
}

func TestFringe_DisplayValue(t *testing.T) {
	pol := DefaultPolicy()

	payroll := model.TransactionDraft{Type: model.TypePayroll, Amount: dec("100000")}
	if got := Fringe(payroll, pol); !got.Equal(dec("46000")) {
		t.Errorf("payroll fringe = %s, want 46000", got)
	}

	purchase := model.TransactionDraft{Type: model.TypePurchase, Amount: dec("100000")}
	if got := Fringe(purchase, pol); !got.IsZero() {
		t.Errorf("purchase fringe = %s, want 0", got)
	}
}
