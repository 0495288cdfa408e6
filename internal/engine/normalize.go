package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// Normalize derives the effective amount and posting date for a draft.
//
// Payroll posts on the policy pay date for its cycle and carries the fringe
// surcharge. A Purchase with both a delivery date and payment terms posts
// terms-days after delivery. Everything else posts on the request date at
// face value. Missing or unrecognized required fields fail with
// ErrIncompleteDraft; nothing is defaulted.
func Normalize(draft model.TransactionDraft, pol Policy) (model.NormalizedTransaction, error) {
	var tx model.NormalizedTransaction

	if _, err := model.ParseTransactionType(string(draft.Type)); err != nil {
		return tx, fmt.Errorf("%w: %v", ErrIncompleteDraft, err)
	}
	if draft.Amount.IsNegative() {
		return tx, fmt.Errorf("%w: amount must be non-negative", ErrIncompleteDraft)
	}

	switch draft.Type {
	case model.TypePayroll:
		payDate, ok := pol.PayDate(draft.PayCycle)
		if !ok {
			return tx, fmt.Errorf("%w: unknown pay cycle %q", ErrIncompleteDraft, draft.PayCycle)
		}
		fringe := draft.Amount.Mul(pol.FringeRate)
		tx.EffectiveAmount = draft.Amount.Add(fringe)
		tx.PostingDate = payDate
		tx.Fringe = fringe
		return tx, nil

	case model.TypePurchase:
		if !draft.DeliveryDate.IsZero() && draft.PaymentTermsDays != nil {
			if *draft.PaymentTermsDays < 0 {
				return tx, fmt.Errorf("%w: payment terms must be non-negative", ErrIncompleteDraft)
			}
			tx.EffectiveAmount = draft.Amount
			tx.PostingDate = model.Day(draft.DeliveryDate).AddDate(0, 0, *draft.PaymentTermsDays)
			return tx, nil
		}
		fallthrough

	default: // Travel, Contract, Purchase without delivery+terms
		if draft.RequestDate.IsZero() {
			return tx, fmt.Errorf("%w: request date is required for %s", ErrIncompleteDraft, draft.Type)
		}
		tx.EffectiveAmount = draft.Amount
		tx.PostingDate = model.Day(draft.RequestDate)
		return tx, nil
	}
}

// Fringe is the display-only payroll surcharge for the current form state:
// amount × fringe rate for Payroll drafts, zero for everything else. It is
// recomputed on every type or amount edit, before any simulation runs.
func Fringe(draft model.TransactionDraft, pol Policy) decimal.Decimal {
	if draft.Type != model.TypePayroll {
		return decimal.Zero
	}
	return draft.Amount.Mul(pol.FringeRate)
}
