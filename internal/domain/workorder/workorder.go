package workorder

import (
	"fmt"
	"strings"
	"time"

	vo "upkeep/internal/domain/workorder/value_objects"
)

// WorkOrder is the maintenance work order aggregate root. The number is
// assigned exactly once at creation time and never changes afterwards, even
// across soft deletion.
type WorkOrder struct {
	id             uint
	number         string
	companyID      uint
	title          string
	description    string
	status         vo.Status
	priority       vo.Priority
	dueDate        *time.Time
	startDate      *time.Time
	completionDate *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewWorkOrder(
	companyID uint,
	title string,
	description string,
	priority vo.Priority,
	dueDate *time.Time,
) (*WorkOrder, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &WorkOrder{
		companyID:   companyID,
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		dueDate:     dueDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructWorkOrder(
	id uint,
	number string,
	companyID uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	dueDate *time.Time,
	startDate *time.Time,
	completionDate *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work order status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid work order priority: %s", priority)
	}

	return &WorkOrder{
		id:             id,
		number:         number,
		companyID:      companyID,
		title:          title,
		description:    description,
		status:         status,
		priority:       priority,
		dueDate:        dueDate,
		startDate:      startDate,
		completionDate: completionDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (w *WorkOrder) ID() uint { return w.id }
func (w *WorkOrder) Number() string { return w.number }
func (w *WorkOrder) CompanyID() uint { return w.companyID }
func (w *WorkOrder) Title() string { return w.title }
func (w *WorkOrder) Description() string { return w.description }
func (w *WorkOrder) Status() vo.Status { return w.status }
func (w *WorkOrder) Priority() vo.Priority { return w.priority }
func (w *WorkOrder) DueDate() *time.Time { return w.dueDate }
func (w *WorkOrder) StartDate() *time.Time { return w.startDate }
func (w *WorkOrder) CompletionDate() *time.Time { return w.completionDate }
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time { return w.updatedAt }

// SetID assigns the persistence-generated ID after the initial insert.
func (w *WorkOrder) SetID(id uint) {
	if w.id == 0 {
		w.id = id
	}
}

// SetNumber assigns the work order number. A number can be assigned only once.
func (w *WorkOrder) SetNumber(number string) error {
	if w.number != "" {
		return ErrNumberAlreadyAssigned
	}
	if ParseNumber(number) == 0 {
		return fmt.Errorf("malformed work order number: %s", number)
	}
	w.number = number
	return nil
}

// ChangeStatus moves the work order through its workflow. Entering
// in_progress records the start date and entering completed records the
// completion date, unless the caller already provided them.
func (w *WorkOrder) ChangeStatus(target vo.Status, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid work order status: %s", target)
	}
	if target == w.status {
		return nil
	}
	if !w.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, w.status, target)
	}

	w.status = target
	switch target {
	case vo.StatusInProgress:
		if w.startDate == nil {
			t := now
			w.startDate = &t
		}
	case vo.StatusCompleted:
		if w.completionDate == nil {
			t := now
			w.completionDate = &t
		}
	}
	w.updatedAt = now
	return nil
}

// UpdateDetails replaces the mutable descriptive fields. Date ordering
// between due, start and completion dates is deliberately not validated.
func (w *WorkOrder) UpdateDetails(title, description string, priority vo.Priority, dueDate *time.Time) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	w.title = title
	w.description = description
	w.priority = priority
	w.dueDate = dueDate
	w.updatedAt = time.Now()
	return nil
}

// SetDates overrides the workflow dates directly. Permissive by design of the
// product: no ordering constraint between the three dates is enforced.
func (w *WorkOrder) SetDates(startDate, completionDate *time.Time) {
	w.startDate = startDate
	w.completionDate = completionDate
	w.updatedAt = time.Now()
}
