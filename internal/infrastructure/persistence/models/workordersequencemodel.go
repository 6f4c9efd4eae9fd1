package models

import (
	"time"

	"upkeep/internal/shared/constants"
)

// WorkOrderSequenceModel holds the per-company numbering counter. One row per
// company, keyed by company ID. The counter only ever moves forward; values
// are never handed back, not even when the work order that consumed one is
// deleted.
type WorkOrderSequenceModel struct {
	CompanyID uint      `gorm:"primarykey;autoIncrement:false"`
	LastValue uint64    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (WorkOrderSequenceModel) TableName() string {
	return constants.TableWorkOrderSequences
}
