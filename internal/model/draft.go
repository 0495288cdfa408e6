// Package model defines domain types for cashlens drafts, timelines, and risk.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of prospective transaction.
type TransactionType string

// PayCycle identifies the payroll schedule for Payroll drafts.
type PayCycle string

const (
	TypePurchase TransactionType = "Purchase"
	TypePayroll  TransactionType = "Payroll"
	TypeTravel   TransactionType = "Travel"
	TypeContract TransactionType = "Contract"

	CycleBiWeekly PayCycle = "Bi-Weekly"
	CycleMonthly  PayCycle = "Monthly"
)

// TransactionTypes lists all valid types in form display order.
var TransactionTypes = []TransactionType{TypePurchase, TypePayroll, TypeTravel, TypeContract}

// PayCycles lists all valid pay cycles in form display order.
var PayCycles = []PayCycle{CycleBiWeekly, CycleMonthly}

// ParseTransactionType validates a raw type string. Unrecognized values are
// an error, never coerced to a default.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypePurchase, TypePayroll, TypeTravel, TypeContract:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// ParsePayCycle validates a raw pay cycle string.
func ParsePayCycle(s string) (PayCycle, error) {
	switch PayCycle(s) {
	case CycleBiWeekly, CycleMonthly:
		return PayCycle(s), nil
	}
	return "", fmt.Errorf("unknown pay cycle %q", s)
}

// TransactionDraft is one prospective transaction as entered by the operator.
// A zero date means the field was left empty; PaymentTermsDays is nil when
// empty. Drafts are values: each edit builds a new draft, and the engine
// never mutates one.
type TransactionDraft struct {
	Type             TransactionType
	Amount           decimal.Decimal
	RequestDate      time.Time
	DeliveryDate     time.Time // Purchase only
	PaymentTermsDays *int      // Purchase only
	Department       string
	FundType         string
	HireDate         time.Time // Payroll only
	PayCycle         PayCycle  // Payroll only
}

// NormalizedTransaction is the engine-ready form of a draft: the amount that
// will actually hit the balance and the calendar date it posts on. Derived
// per simulation, never stored.
type NormalizedTransaction struct {
	EffectiveAmount decimal.Decimal
	PostingDate     time.Time
	Fringe          decimal.Decimal // payroll surcharge portion, zero otherwise
}

// Decision is an operator's approval verdict on a draft.
type Decision string

const (
	DecisionApprove    Decision = "approve"
	DecisionDisapprove Decision = "disapprove"
)

// ParseDecision validates a raw decision string.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove, DecisionDisapprove:
		return Decision(s), nil
	}
	return "", fmt.Errorf("unknown decision %q", s)
}
