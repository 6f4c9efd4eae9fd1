package usecases

import (
	"time"

	"upkeep/internal/domain/workorder"
)

// WorkOrderResult is the read model shared by the work order use cases.
type WorkOrderResult struct {
	ID             uint       `json:"id"`
	Number         string     `json:"number"`
	CompanyID      uint       `json:"company_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ListWorkOrdersResult struct {
	Items    []*WorkOrderResult `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func newWorkOrderResult(wo *workorder.WorkOrder) *WorkOrderResult {
	return &WorkOrderResult{
		ID:             wo.ID(),
		Number:         wo.Number(),
		CompanyID:      wo.CompanyID(),
		Title:          wo.Title(),
		Description:    wo.Description(),
		Status:         wo.Status().String(),
		Priority:       wo.Priority().String(),
		DueDate:        wo.DueDate(),
		StartDate:      wo.StartDate(),
		CompletionDate: wo.CompletionDate(),
		CreatedAt:      wo.CreatedAt(),
		UpdatedAt:      wo.UpdatedAt(),
	}
}
