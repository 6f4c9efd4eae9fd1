package usecases

import (
	"context"

	"upkeep/internal/domain/workorder"
	vo "upkeep/internal/domain/workorder/value_objects"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

type ListWorkOrdersQuery struct {
	CompanyID uint
	Status    string
	Priority  string
	Page      int
	PageSize  int
}

// ListWorkOrdersUseCase returns a company's work orders, newest first.
// Soft-deleted rows never appear in listings.
type ListWorkOrdersUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewListWorkOrdersUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *ListWorkOrdersUseCase {
	return &ListWorkOrdersUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *ListWorkOrdersUseCase) Execute(ctx context.Context, query ListWorkOrdersQuery) (*ListWorkOrdersResult, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := workorder.Filter{
		CompanyID: query.CompanyID,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}
	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	workOrders, total, err := uc.workOrderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "error", err, "company_id", query.CompanyID)
		return nil, err
	}

	items := make([]*WorkOrderResult, 0, len(workOrders))
	for _, wo := range workOrders {
		items = append(items, newWorkOrderResult(wo))
	}

	return &ListWorkOrdersResult{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
