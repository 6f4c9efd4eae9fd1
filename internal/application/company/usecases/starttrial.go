package usecases

import (
	"context"
	stderrors "errors"

	"upkeep/internal/domain/billing"
	"upkeep/internal/domain/company"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type StartTrialCommand struct {
	CompanySID string
}

type StartTrialUseCase struct {
	companyRepo company.Repository
	historyRepo billing.HistoryRepository
	txMgr       TransactionManager
	cache       EntitlementCache
	trialDays   int
	logger      logger.Interface
}

func NewStartTrialUseCase(
	companyRepo company.Repository,
	historyRepo billing.HistoryRepository,
	txMgr TransactionManager,
	cache EntitlementCache,
	trialDays int,
	logger logger.Interface,
) *StartTrialUseCase {
	return &StartTrialUseCase{
		companyRepo: companyRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		cache:       cache,
		trialDays:   trialDays,
		logger:      logger,
	}
}

func (uc *StartTrialUseCase) Execute(ctx context.Context, cmd StartTrialCommand) (*SubscriptionResult, error) {
	uc.logger.Infow("executing start trial use case", "company_sid", cmd.CompanySID)

	if cmd.CompanySID == "" {
		return nil, errors.NewValidationError("company SID is required")
	}

	comp, err := uc.companyRepo.GetBySID(ctx, cmd.CompanySID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "error", err, "company_sid", cmd.CompanySID)
		return nil, err
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	now := biztime.NowUTC()
	if err := comp.StartTrial(now, uc.trialDays); err != nil {
		if stderrors.Is(err, company.ErrAlreadySubscribed) {
			return nil, errors.NewConflictError("a trial or paid subscription already exists")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	entry, err := billing.NewTrialEntry(comp.ID(), *comp.StartDate(), *comp.EndDate())
	if err != nil {
		return nil, errors.NewInternalError("failed to build trial history entry", err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companyRepo.Update(txCtx, comp); err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist trial activation", "error", err, "company_sid", cmd.CompanySID)
		return nil, err
	}

	uc.invalidateEntitlement(ctx, cmd.CompanySID)

	uc.logger.Infow("trial started", "company_sid", cmd.CompanySID, "end_date", comp.EndDate())
	return newSubscriptionResult(comp, now), nil
}

func (uc *StartTrialUseCase) invalidateEntitlement(ctx context.Context, sid string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, sid); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "company_sid", sid)
	}
}
