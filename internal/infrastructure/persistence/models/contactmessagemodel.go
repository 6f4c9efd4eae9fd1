package models

import (
	"time"

	"upkeep/internal/shared/constants"
)

// ContactMessageModel persists inbound contact and custom solution requests.
type ContactMessageModel struct {
	ID          uint      `gorm:"primarykey"`
	Kind        string    `gorm:"not null;size:24;index:idx_message_kind,priority:1"`
	Name        string    `gorm:"not null;size:200"`
	Email       string    `gorm:"not null;size:254"`
	CompanyName string    `gorm:"size:200"`
	Body        string    `gorm:"type:text;not null"`
	BodyHTML    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index:idx_message_kind,priority:2"`
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return constants.TableContactMessages
}
