package usecases

import (
	"context"
	"time"
)

// Entitlement is the cached access snapshot used to gate feature routes
// without a database round trip.
type Entitlement struct {
	CompanyID uint       `json:"company_id"`
	Status    string     `json:"status"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// EntitlementCache is advisory: lookups that miss or fail fall through to
// the repository, and every lifecycle transition invalidates the entry.
type EntitlementCache interface {
	Get(ctx context.Context, companySID string) (*Entitlement, error)
	Set(ctx context.Context, companySID string, entitlement *Entitlement) error
	Invalidate(ctx context.Context, companySID string) error
}
