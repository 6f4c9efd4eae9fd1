package company

import (
	"fmt"
	"strings"
	"time"

	vo "upkeep/internal/domain/company/value_objects"
)

// Company is the tenant aggregate root. The subscription state lives on the
// company row itself; every mutation of the subscription fields goes through
// the transition methods below, which take the current time as a parameter so
// time-dependent behavior stays deterministic under test.
type Company struct {
	id        uint
	sid       string
	name      string
	planType  vo.PlanType
	status    vo.SubscriptionStatus
	startDate *time.Time
	endDate   *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewCompany(sid, name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("company name exceeds maximum length of 200 characters")
	}
	if sid == "" {
		return nil, fmt.Errorf("company SID is required")
	}

	now := time.Now()
	return &Company{
		sid:       sid,
		name:      name,
		planType:  vo.PlanNone,
		status:    vo.StatusNone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCompany(
	id uint,
	sid string,
	name string,
	planType vo.PlanType,
	status vo.SubscriptionStatus,
	startDate *time.Time,
	endDate *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("company SID is required")
	}
	if !vo.ValidPlanTypes[planType] {
		return nil, fmt.Errorf("invalid plan type: %s", planType)
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Company{
		id:        id,
		sid:       sid,
		name:      name,
		planType:  planType,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Company) ID() uint { return c.id }
func (c *Company) SID() string { return c.sid }
func (c *Company) Name() string { return c.name }
func (c *Company) PlanType() vo.PlanType { return c.planType }
func (c *Company) Status() vo.SubscriptionStatus { return c.status }
func (c *Company) StartDate() *time.Time { return c.startDate }
func (c *Company) EndDate() *time.Time { return c.endDate }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

// SetID assigns the persistence-generated ID after the initial insert.
func (c *Company) SetID(id uint) {
	if c.id == 0 {
		c.id = id
	}
}

// StartTrial begins the single free trial. A company that ever held a trial
// or paid subscription cannot start another one.
func (c *Company) StartTrial(now time.Time, trialDays int) error {
	if c.status != vo.StatusNone || c.planType != vo.PlanNone {
		return ErrAlreadySubscribed
	}
	if trialDays <= 0 {
		return fmt.Errorf("trial length must be positive, got %d days", trialDays)
	}

	start := now
	end := now.AddDate(0, 0, trialDays)
	c.planType = vo.PlanTrial
	c.status = vo.StatusTrial
	c.startDate = &start
	c.endDate = &end
	c.updatedAt = now
	return nil
}

// ActivatePlan applies a confirmed paid checkout. Renewing an active paid
// subscription before its end date extends from that end date rather than
// restarting, so no already-paid time is lost. Every other starting state
// begins a fresh period at now.
func (c *Company) ActivatePlan(plan vo.PlanType, now time.Time) error {
	if !plan.IsPaid() {
		return ErrInvalidPlanType
	}
	if !c.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate a plan from status %s", c.status)
	}

	start := now
	if c.status == vo.StatusActive && c.planType.IsPaid() && c.endDate != nil && c.endDate.After(now) {
		start = *c.endDate
	}
	end := plan.PeriodEnd(start)

	c.planType = plan
	c.status = vo.StatusActive
	c.startDate = &start
	c.endDate = &end
	c.updatedAt = now
	return nil
}

// Cancel stops renewal of an active paid subscription. The end date is left
// untouched: access continues until the already-paid period lapses, at which
// point expiry evaluation takes over.
func (c *Company) Cancel(now time.Time) error {
	if c.status != vo.StatusActive {
		return ErrSubscriptionNotActive
	}
	if c.planType == vo.PlanTrial {
		return ErrTrialNotCancellable
	}

	c.status = vo.StatusCancelled
	c.updatedAt = now
	return nil
}

// EvaluateExpiry lazily applies the time-based transition to expired. There
// is no background scheduler; callers invoke this before any entitlement
// read. Cancelled subscriptions also expire here once their already-paid
// window lapses. Returns true when a transition happened. Idempotent.
func (c *Company) EvaluateExpiry(now time.Time) bool {
	if c.status != vo.StatusTrial && c.status != vo.StatusActive && c.status != vo.StatusCancelled {
		return false
	}
	if c.endDate == nil || !now.After(*c.endDate) {
		return false
	}

	c.status = vo.StatusExpired
	c.updatedAt = now
	return true
}

// RemainingDays reports whole days of entitlement left, rounded up and
// clamped at zero.
func (c *Company) RemainingDays(now time.Time) int {
	if c.endDate == nil {
		return 0
	}
	remaining := c.endDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int((remaining + 24*time.Hour - 1) / (24 * time.Hour))
	return days
}

// Rename updates the company display name.
func (c *Company) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("company name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("company name exceeds maximum length of 200 characters")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}
