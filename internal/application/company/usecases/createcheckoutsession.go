package usecases

import (
	"context"

	"upkeep/internal/application/billing/checkoutgateway"
	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	"upkeep/internal/shared/config"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

type CreateCheckoutSessionCommand struct {
	CompanySID string
	PlanType   string
}

type CreateCheckoutSessionResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreateCheckoutSessionUseCase obtains a redirect URL from the checkout
// provider. It never mutates subscription state; that happens only when the
// provider confirms completion through the callback.
type CreateCheckoutSessionUseCase struct {
	companyRepo  company.Repository
	gateway      checkoutgateway.CheckoutGateway
	subscription config.SubscriptionConfig
	checkout     config.CheckoutConfig
	logger       logger.Interface
}

func NewCreateCheckoutSessionUseCase(
	companyRepo company.Repository,
	gateway checkoutgateway.CheckoutGateway,
	subscription config.SubscriptionConfig,
	checkout config.CheckoutConfig,
	logger logger.Interface,
) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		companyRepo:  companyRepo,
		gateway:      gateway,
		subscription: subscription,
		checkout:     checkout,
		logger:       logger,
	}
}

func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*CreateCheckoutSessionResult, error) {
	uc.logger.Infow("executing create checkout session use case", "company_sid", cmd.CompanySID, "plan_type", cmd.PlanType)

	if cmd.CompanySID == "" {
		return nil, errors.NewValidationError("company SID is required")
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

	amount := uc.subscription.MonthlyPriceCents
	if plan == vo.PlanAnnual {
		amount = uc.subscription.AnnualPriceCents
	}

	resp, err := uc.gateway.CreateCheckoutSession(ctx, checkoutgateway.CreateSessionRequest{
		CompanySID:  comp.SID(),
		PlanType:    plan.String(),
		AmountCents: amount,
		Currency:    uc.subscription.Currency,
		SuccessURL:  uc.checkout.SuccessURL,
		CancelURL:   uc.checkout.CancelURL,
		CallbackURL: uc.checkout.CallbackURL,
	})
	if err != nil {
		uc.logger.Errorw("checkout provider rejected session creation", "error", err, "company_sid", cmd.CompanySID)
		return nil, errors.NewInternalError("failed to create checkout session")
	}

	uc.logger.Infow("checkout session created", "company_sid", cmd.CompanySID, "session_id", resp.SessionID)
	return &CreateCheckoutSessionResult{
		SessionID: resp.SessionID,
		URL:       resp.URL,
	}, nil
}
