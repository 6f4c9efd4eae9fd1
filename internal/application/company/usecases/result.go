package usecases

import (
	"time"

	"upkeep/internal/domain/company"
)

// SubscriptionResult is the shared read model returned by the subscription
// lifecycle use cases.
type SubscriptionResult struct {
	CompanySID    string     `json:"company_sid"`
	CompanyName   string     `json:"company_name"`
	PlanType      string     `json:"plan_type"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	RemainingDays int        `json:"remaining_days"`
}

func newSubscriptionResult(c *company.Company, now time.Time) *SubscriptionResult {
	return &SubscriptionResult{
		CompanySID:    c.SID(),
		CompanyName:   c.Name(),
		PlanType:      c.PlanType().String(),
		Status:        c.Status().String(),
		StartDate:     c.StartDate(),
		EndDate:       c.EndDate(),
		RemainingDays: c.RemainingDays(now),
	}
}
