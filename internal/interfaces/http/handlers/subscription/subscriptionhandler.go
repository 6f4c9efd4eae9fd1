package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upkeep/internal/application/billing/checkoutgateway"
	"upkeep/internal/application/company/usecases"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/id"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

type SubscriptionHandler struct {
	startTrialUC    usecases.StartTrialExecutor
	createSessionUC usecases.CreateCheckoutSessionExecutor
	completeUC      usecases.CompleteCheckoutExecutor
	cancelUC        usecases.CancelSubscriptionExecutor
	getUC           usecases.GetSubscriptionExecutor
	gateway         checkoutgateway.CheckoutGateway
	logger          logger.Interface
}

func NewSubscriptionHandler(
	startTrialUC usecases.StartTrialExecutor,
	createSessionUC usecases.CreateCheckoutSessionExecutor,
	completeUC usecases.CompleteCheckoutExecutor,
	cancelUC usecases.CancelSubscriptionExecutor,
	getUC usecases.GetSubscriptionExecutor,
	gateway checkoutgateway.CheckoutGateway,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		startTrialUC:    startTrialUC,
		createSessionUC: createSessionUC,
		completeUC:      completeUC,
		cancelUC:        cancelUC,
		getUC:           getUC,
		gateway:         gateway,
		logger:          log,
	}
}

// StartTrial handles POST /api/subscriptions/create-trial
// @Summary Start free trial
// @Description Begin the single 7-day free trial for a company
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body StartTrialRequest true "Company SID"
// @Success 201 {object} utils.APIResponse{data=usecases.SubscriptionResult}
// @Failure 409 {object} utils.APIResponse
// @Router /api/subscriptions/create-trial [post]
func (h *SubscriptionHandler) StartTrial(c *gin.Context) {
	var req StartTrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.startTrialUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Trial started successfully")
}

// CreateCheckoutSession handles POST /api/subscriptions/create-checkout-session
// @Summary Create checkout session
// @Description Build a redirect URL to the checkout provider for a paid plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body CreateCheckoutSessionRequest true "Company SID and plan"
// @Success 200 {object} utils.APIResponse{data=usecases.CreateCheckoutSessionResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/subscriptions/create-checkout-session [post]
func (h *SubscriptionHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createSessionUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckoutCallback handles POST /api/subscriptions/checkout-callback. The
// checkout provider calls this server to server; the payload is verified by
// the gateway before anything is trusted. Providers redeliver until they see
// success, so the usecase is idempotent by payment reference.
// @Summary Checkout provider callback
// @Description Verify and apply a server-to-server payment notification
// @Tags Subscriptions
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.SubscriptionResult}
// @Failure 400 {object} utils.APIResponse
// @Router /api/subscriptions/checkout-callback [post]
func (h *SubscriptionHandler) CheckoutCallback(c *gin.Context) {
	data, err := h.gateway.VerifyCallback(c.Request)
	if err != nil {
		h.logger.Warnw("checkout callback verification failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid checkout callback"))
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteCheckoutCommand{
		CompanySID:  data.CompanySID,
		PlanType:    data.PlanType,
		AmountCents: data.AmountCents,
		Currency:    data.Currency,
		PaymentRef:  data.PaymentRef,
		Status:      data.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checkout processed", result)
}

// CancelSubscription handles POST /api/subscriptions/cancel
// @Summary Cancel subscription
// @Description Cancel the current plan while keeping access until the paid period ends
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body CancelSubscriptionRequest true "Company SID"
// @Success 200 {object} utils.APIResponse{data=usecases.SubscriptionResult}
// @Failure 409 {object} utils.APIResponse
// @Router /api/subscriptions/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	var req CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled", result)
}

// GetSubscription handles GET /api/subscriptions/company/:sid. Reading the
// subscription evaluates expiry lazily, so this is also the poll endpoint
// frontends use after checkout.
// @Summary Get subscription state
// @Description Read the current subscription, applying lazy expiry first
// @Tags Subscriptions
// @Produce json
// @Param sid path string true "Company SID"
// @Success 200 {object} utils.APIResponse{data=usecases.SubscriptionResult}
// @Failure 404 {object} utils.APIResponse
// @Router /api/subscriptions/company/{sid} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixCompany, "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetSubscriptionQuery{CompanySID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
