package models

import (
	"time"

	"gorm.io/gorm"

	"upkeep/internal/shared/constants"
)

// WorkOrderModel represents the database persistence model for work orders.
// The composite unique index on (company_id, number) is the hard backstop for
// per-company number uniqueness; it covers soft-deleted rows because GORM
// soft deletes keep the row in place.
type WorkOrderModel struct {
	ID             uint           `gorm:"primarykey"`
	Number         string         `gorm:"not null;size:32;uniqueIndex:idx_company_number,priority:2"`
	CompanyID      uint           `gorm:"not null;uniqueIndex:idx_company_number,priority:1;index:idx_company_created,priority:1"`
	Title          string         `gorm:"not null;size:200"`
	Description    string         `gorm:"type:text"`
	Status         string         `gorm:"not null;size:16;default:open;index:idx_work_order_status"`
	Priority       string         `gorm:"not null;size:16;default:medium"`
	DueDate        *time.Time
	StartDate      *time.Time
	CompletionDate *time.Time
	CreatedAt      time.Time      `gorm:"index:idx_company_created,priority:2"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (WorkOrderModel) TableName() string {
	return constants.TableWorkOrders
}
