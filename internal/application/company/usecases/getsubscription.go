package usecases

import (
	"context"

	"upkeep/internal/domain/company"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type GetSubscriptionQuery struct {
	CompanySID string
}

// GetSubscriptionUseCase reads the subscription state. Expiry is evaluated
// lazily here since there is no background scheduler; a transition that
// fires is persisted before the state is returned.
type GetSubscriptionUseCase struct {
	companyRepo company.Repository
	cache       EntitlementCache
	logger      logger.Interface
}

func NewGetSubscriptionUseCase(
	companyRepo company.Repository,
	cache EntitlementCache,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		companyRepo: companyRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, query GetSubscriptionQuery) (*SubscriptionResult, error) {
	if query.CompanySID == "" {
		return nil, errors.NewValidationError("company SID is required")
	}

	comp, err := uc.companyRepo.GetBySID(ctx, query.CompanySID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "error", err, "company_sid", query.CompanySID)
		return nil, err
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	now := biztime.NowUTC()
	if comp.EvaluateExpiry(now) {
		if err := uc.companyRepo.Update(ctx, comp); err != nil {
			uc.logger.Errorw("failed to persist lazy expiry", "error", err, "company_sid", query.CompanySID)
			return nil, err
		}
		if uc.cache != nil {
			if err := uc.cache.Invalidate(ctx, query.CompanySID); err != nil {
				uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "company_sid", query.CompanySID)
			}
		}
		uc.logger.Infow("subscription expired lazily", "company_sid", query.CompanySID)
	}

	return newSubscriptionResult(comp, now), nil
}
