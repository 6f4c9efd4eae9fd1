package usecases

import (
	"context"
	stderrors "errors"

	"upkeep/internal/domain/company"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	CompanySID string
}

// CancelSubscriptionUseCase stops renewal of an active paid subscription.
// The end date is preserved so access continues until the paid period ends.
type CancelSubscriptionUseCase struct {
	companyRepo company.Repository
	cache       EntitlementCache
	logger      logger.Interface
}

func NewCancelSubscriptionUseCase(
	companyRepo company.Repository,
	cache EntitlementCache,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		companyRepo: companyRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*SubscriptionResult, error) {
	uc.logger.Infow("executing cancel subscription use case", "company_sid", cmd.CompanySID)

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

	// A lapsed subscription must read as expired, not active, before the
	// cancel precondition is checked.
	expired := comp.EvaluateExpiry(now)

	if err := comp.Cancel(now); err != nil {
		if expired {
			if updateErr := uc.companyRepo.Update(ctx, comp); updateErr != nil {
				uc.logger.Errorw("failed to persist lazy expiry", "error", updateErr, "company_sid", cmd.CompanySID)
			} else {
				uc.invalidateEntitlement(ctx, cmd.CompanySID)
			}
		}
		switch {
		case stderrors.Is(err, company.ErrSubscriptionNotActive):
			return nil, errors.NewBadRequestError("subscription is not active")
		case stderrors.Is(err, company.ErrTrialNotCancellable):
			return nil, errors.NewBadRequestError("trial subscriptions expire on their own and cannot be cancelled")
		default:
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := uc.companyRepo.Update(ctx, comp); err != nil {
		uc.logger.Errorw("failed to persist cancellation", "error", err, "company_sid", cmd.CompanySID)
		return nil, err
	}

	uc.invalidateEntitlement(ctx, cmd.CompanySID)

	uc.logger.Infow("subscription cancelled", "company_sid", cmd.CompanySID, "end_date", comp.EndDate())
	return newSubscriptionResult(comp, now), nil
}

func (uc *CancelSubscriptionUseCase) invalidateEntitlement(ctx context.Context, sid string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, sid); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "company_sid", sid)
	}
}
