package models

import (
	"time"

	"gorm.io/gorm"

	"upkeep/internal/shared/constants"
)

// CompanyModel represents the database persistence model for companies.
// This is the anti-corruption layer between domain and database.
type CompanyModel struct {
	ID                    uint           `gorm:"primarykey"`
	SID                   string         `gorm:"column:sid;uniqueIndex;not null;size:32;comment:Stripe-style ID: co_xxx"`
	Name                  string         `gorm:"not null;size:200"`
	PlanType              string         `gorm:"not null;size:16;default:none"`
	SubscriptionStatus    string         `gorm:"not null;size:16;default:none;index:idx_subscription_status"`
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
