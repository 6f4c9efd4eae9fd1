package usecases

import (
	"context"

	"upkeep/internal/domain/workorder"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type GetWorkOrderQuery struct {
	ID        uint
	CompanyID uint
}

type GetWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewGetWorkOrderUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *GetWorkOrderUseCase {
	return &GetWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *GetWorkOrderUseCase) Execute(ctx context.Context, query GetWorkOrderQuery) (*WorkOrderResult, error) {
	if query.ID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "error", err, "work_order_id", query.ID)
		return nil, err
	}
	if wo == nil || (query.CompanyID != 0 && wo.CompanyID() != query.CompanyID) {
		return nil, errors.NewNotFoundError("work order not found")
	}

	return newWorkOrderResult(wo), nil
}
