package models

import (
	"time"

	"upkeep/internal/shared/constants"
)

// SubscriptionHistoryModel is the append-only billing ledger. Rows are never
// updated or deleted, so there are no UpdatedAt or DeletedAt columns. The
// unique payment_ref index is what makes checkout completion idempotent under
// concurrent callbacks.
type SubscriptionHistoryModel struct {
	ID          uint      `gorm:"primarykey"`
	CompanyID   uint      `gorm:"not null;index:idx_history_company,priority:1"`
	PlanType    string    `gorm:"not null;size:16"`
	AmountCents int64     `gorm:"not null;default:0"`
	Currency    string    `gorm:"not null;size:8"`
	PaymentRef  string    `gorm:"uniqueIndex;not null;size:128"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;size:16"`
	CreatedAt   time.Time `gorm:"index:idx_history_company,priority:2"`
}

// TableName specifies the table name for GORM
func (SubscriptionHistoryModel) TableName() string {
	return constants.TableSubscriptionHistories
}
