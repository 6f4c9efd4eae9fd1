package workorder

import (
	"context"

	vo "upkeep/internal/domain/workorder/value_objects"
)

type Repository interface {
	// Save inserts the work order. The persistence layer enforces the unique
	// (company_id, number) constraint; violations surface as duplicate errors.
	Save(ctx context.Context, workOrder *WorkOrder) error
	GetByID(ctx context.Context, id uint) (*WorkOrder, error)
	// GetLatestByCompanyID returns the most recently created work order for the
	// company including soft-deleted rows, or nil when none exists.
	GetLatestByCompanyID(ctx context.Context, companyID uint) (*WorkOrder, error)
	Update(ctx context.Context, workOrder *WorkOrder) error
	// Delete soft-deletes the work order. The row and its number remain
	// visible to the numbering sequence forever.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*WorkOrder, int64, error)
}

// SequenceRepository allocates per-company work order numbers from a
// monotonic counter row, incremented inside the caller's transaction.
type SequenceRepository interface {
	// NextNumber increments and returns the company's counter as a formatted
	// work order number. The first allocation seeds the counter from the
	// latest existing work order, soft-deleted rows included.
	NextNumber(ctx context.Context, companyID uint) (string, error)
}

type Filter struct {
	CompanyID uint
	Status    *vo.Status
	Priority  *vo.Priority
	Page      int
	PageSize  int
}
