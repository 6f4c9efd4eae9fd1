package valueobjects

import "time"

type PlanType string

const (
	PlanNone    PlanType = "none"
	PlanTrial   PlanType = "trial"
	PlanMonthly PlanType = "monthly"
	PlanAnnual  PlanType = "annual"
)

func (p PlanType) String() string {
	return string(p)
}

func (p PlanType) IsValid() bool {
	return ValidPlanTypes[p]
}

// IsPaid reports whether the plan is purchased through checkout.
func (p PlanType) IsPaid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

// PeriodEnd returns the entitlement end for a period starting at the given
// time. Calendar arithmetic, so a monthly period started Jan 31 ends Feb 28
// or 29 depending on the year.
func (p PlanType) PeriodEnd(start time.Time) time.Time {
	switch p {
	case PlanMonthly:
		return start.AddDate(0, 1, 0)
	case PlanAnnual:
		return start.AddDate(1, 0, 0)
	default:
		return start
	}
}

var ValidPlanTypes = map[PlanType]bool{
	PlanNone:    true,
	PlanTrial:   true,
	PlanMonthly: true,
	PlanAnnual:  true,
}
