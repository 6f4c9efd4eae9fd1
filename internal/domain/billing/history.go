// Package billing holds the append-only subscription history ledger. Entries
// record every trial activation and completed payment and are never mutated
// or deleted afterwards.
package billing

import (
	"fmt"
	"time"

	companyvo "upkeep/internal/domain/company/value_objects"
)

type EntryStatus string

const (
	EntryStatusPaid  EntryStatus = "paid"
	EntryStatusTrial EntryStatus = "trial"
)

// HistoryEntry is one immutable ledger row. PaymentRef is the external
// payment reference and doubles as the idempotency key for checkout
// completion callbacks.
type HistoryEntry struct {
	id          uint
	companyID   uint
	planType    companyvo.PlanType
	amountCents int64
	currency    string
	paymentRef  string
	periodStart time.Time
	periodEnd   time.Time
	status      EntryStatus
	createdAt   time.Time
}

// NewPaymentEntry records a completed paid checkout.
func NewPaymentEntry(
	companyID uint,
	planType companyvo.PlanType,
	amountCents int64,
	currency string,
	paymentRef string,
	periodStart time.Time,
	periodEnd time.Time,
) (*HistoryEntry, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !planType.IsPaid() {
		return nil, fmt.Errorf("payment entries require a paid plan type, got %s", planType)
	}
	if amountCents < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if paymentRef == "" {
		return nil, fmt.Errorf("payment reference is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("period end must not precede period start")
	}

	return &HistoryEntry{
		companyID:   companyID,
		planType:    planType,
		amountCents: amountCents,
		currency:    currency,
		paymentRef:  paymentRef,
		periodStart: periodStart,
		periodEnd:   periodEnd,
		status:      EntryStatusPaid,
		createdAt:   time.Now(),
	}, nil
}

// NewTrialEntry records a trial activation. Trials carry no payment, so the
// reference is synthesized from the company to keep the column unique.
func NewTrialEntry(companyID uint, periodStart, periodEnd time.Time) (*HistoryEntry, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("period end must not precede period start")
	}

	return &HistoryEntry{
		companyID:   companyID,
		planType:    companyvo.PlanTrial,
		amountCents: 0,
		currency:    "",
		paymentRef:  fmt.Sprintf("trial_%d_%d", companyID, periodStart.Unix()),
		periodStart: periodStart,
		periodEnd:   periodEnd,
		status:      EntryStatusTrial,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	companyID uint,
	planType companyvo.PlanType,
	amountCents int64,
	currency string,
	paymentRef string,
	periodStart time.Time,
	periodEnd time.Time,
	status EntryStatus,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	return &HistoryEntry{
		id:          id,
		companyID:   companyID,
		planType:    planType,
		amountCents: amountCents,
		currency:    currency,
		paymentRef:  paymentRef,
		periodStart: periodStart,
		periodEnd:   periodEnd,
		status:      status,
		createdAt:   createdAt,
	}, nil
}

func (e *HistoryEntry) ID() uint { return e.id }
func (e *HistoryEntry) CompanyID() uint { return e.companyID }
func (e *HistoryEntry) PlanType() companyvo.PlanType { return e.planType }
func (e *HistoryEntry) AmountCents() int64 { return e.amountCents }
func (e *HistoryEntry) Currency() string { return e.currency }
func (e *HistoryEntry) PaymentRef() string { return e.paymentRef }
func (e *HistoryEntry) PeriodStart() time.Time { return e.periodStart }
func (e *HistoryEntry) PeriodEnd() time.Time { return e.periodEnd }
func (e *HistoryEntry) Status() EntryStatus { return e.status }
func (e *HistoryEntry) CreatedAt() time.Time { return e.createdAt }

// SetID assigns the persistence-generated ID after the initial insert.
func (e *HistoryEntry) SetID(id uint) {
	if e.id == 0 {
		e.id = id
	}
}
