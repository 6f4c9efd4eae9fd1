package usecases

import (
	"context"
	"time"

	"upkeep/internal/domain/workorder"
	vo "upkeep/internal/domain/workorder/value_objects"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

// maxCreateAttempts bounds the retry loop that absorbs unique-constraint
// races on (company_id, number). The sequence row serializes writers, so a
// second attempt is already rare.
const maxCreateAttempts = 3

type CreateWorkOrderCommand struct {
	CompanyID   uint
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// CreateWorkOrderUseCase allocates the next per-company number and inserts
// the work order inside one transaction, retrying on duplicate-number
// conflicts so the race is invisible to the caller.
type CreateWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	sequenceRepo  workorder.SequenceRepository
	txMgr         TransactionManager
	logger        logger.Interface
}

func NewCreateWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	sequenceRepo workorder.SequenceRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateWorkOrderUseCase {
	return &CreateWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		sequenceRepo:  sequenceRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *CreateWorkOrderUseCase) Execute(ctx context.Context, cmd CreateWorkOrderCommand) (*WorkOrderResult, error) {
	uc.logger.Infow("executing create work order use case", "company_id", cmd.CompanyID, "title", cmd.Title)

	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	var created *workorder.WorkOrder
	var lastErr error

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		wo, err := workorder.NewWorkOrder(cmd.CompanyID, cmd.Title, cmd.Description, vo.Priority(cmd.Priority), cmd.DueDate)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		lastErr = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			number, err := uc.sequenceRepo.NextNumber(txCtx, cmd.CompanyID)
			if err != nil {
				return err
			}
			if err := wo.SetNumber(number); err != nil {
				return err
			}
			return uc.workOrderRepo.Save(txCtx, wo)
		})
		if lastErr == nil {
			created = wo
			break
		}
		if !errors.IsDuplicateError(lastErr) {
			uc.logger.Errorw("failed to create work order", "error", lastErr, "company_id", cmd.CompanyID)
			return nil, lastErr
		}
		uc.logger.Warnw("work order number collision, retrying",
			"company_id", cmd.CompanyID, "attempt", attempt)
	}

	if created == nil {
		uc.logger.Errorw("exhausted work order number retries", "error", lastErr, "company_id", cmd.CompanyID)
		return nil, errors.NewConflictError("failed to allocate a work order number, please retry")
	}

	uc.logger.Infow("work order created", "work_order_id", created.ID(), "number", created.Number())
	return newWorkOrderResult(created), nil
}
