package usecases

import (
	"context"

	"upkeep/internal/domain/workorder"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type DeleteWorkOrderCommand struct {
	ID        uint
	CompanyID uint
}

// DeleteWorkOrderUseCase soft-deletes a work order. The row stays in
// storage and its number is never reissued.
type DeleteWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewDeleteWorkOrderUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *DeleteWorkOrderUseCase {
	return &DeleteWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *DeleteWorkOrderUseCase) Execute(ctx context.Context, cmd DeleteWorkOrderCommand) error {
	uc.logger.Infow("executing delete work order use case", "work_order_id", cmd.ID)

	if cmd.ID == 0 {
		return errors.NewValidationError("work order ID is required")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "error", err, "work_order_id", cmd.ID)
		return err
	}
	if wo == nil || (cmd.CompanyID != 0 && wo.CompanyID() != cmd.CompanyID) {
		return errors.NewNotFoundError("work order not found")
	}

	if err := uc.workOrderRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete work order", "error", err, "work_order_id", cmd.ID)
		return err
	}

	uc.logger.Infow("work order deleted", "work_order_id", cmd.ID, "number", wo.Number())
	return nil
}
