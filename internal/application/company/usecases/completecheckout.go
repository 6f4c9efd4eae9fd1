package usecases

import (
	"context"

	"upkeep/internal/application/billing/checkoutgateway"
	"upkeep/internal/domain/billing"
	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type CompleteCheckoutCommand struct {
	CompanySID  string
	PlanType    string
	AmountCents int64
	Currency    string
	PaymentRef  string
	Status      string
}

// CompleteCheckoutUseCase applies a confirmed checkout to the subscription.
// Callbacks arrive at least once, so processing is idempotent on PaymentRef:
// a reference seen before leaves both the ledger and the subscription
// untouched.
type CompleteCheckoutUseCase struct {
	companyRepo company.Repository
	historyRepo billing.HistoryRepository
	txMgr       TransactionManager
	cache       EntitlementCache
	logger      logger.Interface
}

func NewCompleteCheckoutUseCase(
	companyRepo company.Repository,
	historyRepo billing.HistoryRepository,
	txMgr TransactionManager,
	cache EntitlementCache,
	logger logger.Interface,
) *CompleteCheckoutUseCase {
	return &CompleteCheckoutUseCase{
		companyRepo: companyRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *CompleteCheckoutUseCase) Execute(ctx context.Context, cmd CompleteCheckoutCommand) (*SubscriptionResult, error) {
	uc.logger.Infow("executing complete checkout use case",
		"company_sid", cmd.CompanySID, "plan_type", cmd.PlanType, "payment_ref", cmd.PaymentRef)

	if cmd.PaymentRef == "" {
		return nil, errors.NewValidationError("payment reference is required")
	}
	if cmd.Status != checkoutgateway.CallbackStatusCompleted {
		return nil, errors.NewBadRequestError("payment has not been confirmed")
	}
	plan := vo.PlanType(cmd.PlanType)
	if !plan.IsPaid() {
		return nil, errors.NewValidationError("plan type must be monthly or annual")
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

	existing, err := uc.historyRepo.FindByPaymentRef(ctx, cmd.PaymentRef)
	if err != nil {
		uc.logger.Errorw("failed to check payment reference", "error", err, "payment_ref", cmd.PaymentRef)
		return nil, err
	}
	if existing != nil {
		uc.logger.Infow("payment already processed, returning current state", "payment_ref", cmd.PaymentRef)
		return newSubscriptionResult(comp, now), nil
	}

	if err := comp.ActivatePlan(plan, now); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	entry, err := billing.NewPaymentEntry(
		comp.ID(), plan, cmd.AmountCents, cmd.Currency, cmd.PaymentRef,
		*comp.StartDate(), *comp.EndDate(),
	)
	if err != nil {
		return nil, errors.NewInternalError("failed to build payment history entry", err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}
		return uc.companyRepo.Update(txCtx, comp)
	})
	if err != nil {
		// A concurrent delivery of the same callback can hit the unique
		// payment_ref constraint; the first writer won, report its state.
		if errors.IsDuplicateError(err) {
			uc.logger.Infow("payment processed concurrently, returning stored state", "payment_ref", cmd.PaymentRef)
			stored, loadErr := uc.companyRepo.GetBySID(ctx, cmd.CompanySID)
			if loadErr != nil || stored == nil {
				return nil, errors.NewInternalError("failed to reload company after duplicate payment")
			}
			return newSubscriptionResult(stored, now), nil
		}
		uc.logger.Errorw("failed to persist checkout completion", "error", err, "payment_ref", cmd.PaymentRef)
		return nil, err
	}

	uc.invalidateEntitlement(ctx, cmd.CompanySID)

	uc.logger.Infow("subscription activated",
		"company_sid", cmd.CompanySID, "plan_type", plan.String(), "end_date", comp.EndDate())
	return newSubscriptionResult(comp, now), nil
}

func (uc *CompleteCheckoutUseCase) invalidateEntitlement(ctx context.Context, sid string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, sid); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "error", err, "company_sid", sid)
	}
}
