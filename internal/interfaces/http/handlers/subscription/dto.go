package subscription

import (
	"upkeep/internal/application/company/usecases"
)

type StartTrialRequest struct {
	CompanySID string `json:"company_sid" binding:"required"`
}

func (r *StartTrialRequest) ToCommand() usecases.StartTrialCommand {
	return usecases.StartTrialCommand{CompanySID: r.CompanySID}
}

type CreateCheckoutSessionRequest struct {
	CompanySID string `json:"company_sid" binding:"required"`
	PlanType   string `json:"plan_type" binding:"required,oneof=monthly annual"`
}

func (r *CreateCheckoutSessionRequest) ToCommand() usecases.CreateCheckoutSessionCommand {
	return usecases.CreateCheckoutSessionCommand{
		CompanySID: r.CompanySID,
		PlanType:   r.PlanType,
	}
}

type CancelSubscriptionRequest struct {
	CompanySID string `json:"company_sid" binding:"required"`
}

func (r *CancelSubscriptionRequest) ToCommand() usecases.CancelSubscriptionCommand {
	return usecases.CancelSubscriptionCommand{CompanySID: r.CompanySID}
}
