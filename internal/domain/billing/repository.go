package billing

import "context"

// HistoryRepository is append-only. There are no update or delete
// operations; the ledger is the audit trail.
type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	// FindByPaymentRef returns nil when no entry carries the reference.
	FindByPaymentRef(ctx context.Context, paymentRef string) (*HistoryEntry, error)
	ListByCompanyID(ctx context.Context, companyID uint, page, pageSize int) ([]*HistoryEntry, int64, error)
}
