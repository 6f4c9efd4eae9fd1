package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"upkeep/internal/domain/workorder"
	vo "upkeep/internal/domain/workorder/value_objects"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

// UpdateWorkOrderCommand carries only the fields to change; nil pointers
// leave the current value in place. The number is immutable and has no
// update path at all.
type UpdateWorkOrderCommand struct {
	ID          uint
	CompanyID   uint
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	DueDate     *time.Time
}

type UpdateWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewUpdateWorkOrderUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *UpdateWorkOrderUseCase {
	return &UpdateWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *UpdateWorkOrderUseCase) Execute(ctx context.Context, cmd UpdateWorkOrderCommand) (*WorkOrderResult, error) {
	uc.logger.Infow("executing update work order use case", "work_order_id", cmd.ID)

	if cmd.ID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "error", err, "work_order_id", cmd.ID)
		return nil, err
	}
	if wo == nil || (cmd.CompanyID != 0 && wo.CompanyID() != cmd.CompanyID) {
		return nil, errors.NewNotFoundError("work order not found")
	}

	if cmd.Title != nil || cmd.Description != nil || cmd.Priority != nil || cmd.DueDate != nil {
		title := wo.Title()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		description := wo.Description()
		if cmd.Description != nil {
			description = *cmd.Description
		}
		priority := wo.Priority()
		if cmd.Priority != nil {
			priority = vo.Priority(*cmd.Priority)
		}
		dueDate := wo.DueDate()
		if cmd.DueDate != nil {
			dueDate = cmd.DueDate
		}
		if err := wo.UpdateDetails(title, description, priority, dueDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		if err := wo.ChangeStatus(vo.Status(*cmd.Status), biztime.NowUTC()); err != nil {
			if stderrors.Is(err, workorder.ErrInvalidStatusTransition) {
				return nil, errors.NewBadRequestError(err.Error())
			}
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "error", err, "work_order_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("work order updated", "work_order_id", wo.ID(), "status", wo.Status())
	return newWorkOrderResult(wo), nil
}
