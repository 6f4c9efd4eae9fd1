package workorder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upkeep/internal/application/workorder/usecases"
	"upkeep/internal/shared/constants"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

type WorkOrderHandler struct {
	createWorkOrderUC usecases.CreateWorkOrderExecutor
	getWorkOrderUC    usecases.GetWorkOrderExecutor
	listWorkOrdersUC  usecases.ListWorkOrdersExecutor
	updateWorkOrderUC usecases.UpdateWorkOrderExecutor
	deleteWorkOrderUC usecases.DeleteWorkOrderExecutor
	logger            logger.Interface
}

func NewWorkOrderHandler(
	createWorkOrderUC usecases.CreateWorkOrderExecutor,
	getWorkOrderUC usecases.GetWorkOrderExecutor,
	listWorkOrdersUC usecases.ListWorkOrdersExecutor,
	updateWorkOrderUC usecases.UpdateWorkOrderExecutor,
	deleteWorkOrderUC usecases.DeleteWorkOrderExecutor,
	log logger.Interface,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		createWorkOrderUC: createWorkOrderUC,
		getWorkOrderUC:    getWorkOrderUC,
		listWorkOrdersUC:  listWorkOrdersUC,
		updateWorkOrderUC: updateWorkOrderUC,
		deleteWorkOrderUC: deleteWorkOrderUC,
		logger:            log,
	}
}

// companyID is stored on the context by the entitlement middleware.
func companyID(c *gin.Context) uint {
	val, _ := c.Get(constants.ContextKeyCompanyID)
	id, _ := val.(uint)
	return id
}

// CreateWorkOrder handles POST /api/work-orders
// @Summary Create work order
// @Description Create a work order with an auto-assigned sequential number
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "Company SID"
// @Param request body CreateWorkOrderRequest true "Work order fields"
// @Success 201 {object} utils.APIResponse{data=usecases.WorkOrderResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Router /api/work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create work order", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createWorkOrderUC.Execute(c.Request.Context(), req.ToCommand(companyID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work order created successfully")
}

// GetWorkOrder handles GET /api/work-orders/:id
// @Summary Get work order
// @Description Fetch a single work order belonging to the calling company
// @Tags WorkOrders
// @Produce json
// @Param X-Company-ID header string true "Company SID"
// @Param id path int true "Work order ID"
// @Success 200 {object} utils.APIResponse{data=usecases.WorkOrderResult}
// @Failure 404 {object} utils.APIResponse
// @Router /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getWorkOrderUC.Execute(c.Request.Context(), usecases.GetWorkOrderQuery{
		ID:        id,
		CompanyID: companyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWorkOrders handles GET /api/work-orders
// @Summary List work orders
// @Description Page through the calling company's work orders, optionally filtered
// @Tags WorkOrders
// @Produce json
// @Param X-Company-ID header string true "Company SID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} utils.APIResponse{data=usecases.ListWorkOrdersResult}
// @Router /api/work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	req := parseListWorkOrdersRequest(c)

	result, err := h.listWorkOrdersUC.Execute(c.Request.Context(), req.ToQuery(companyID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateWorkOrder handles PUT /api/work-orders/:id
// @Summary Update work order
// @Description Update the mutable fields of a work order
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param X-Company-ID header string true "Company SID"
// @Param id path int true "Work order ID"
// @Param request body UpdateWorkOrderRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=usecases.WorkOrderResult}
// @Failure 404 {object} utils.APIResponse
// @Router /api/work-orders/{id} [put]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update work order", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateWorkOrderUC.Execute(c.Request.Context(), req.ToCommand(id, companyID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order updated successfully", result)
}

// DeleteWorkOrder handles DELETE /api/work-orders/:id
// @Summary Delete work order
// @Description Soft-delete a work order; its number is never reused
// @Tags WorkOrders
// @Param X-Company-ID header string true "Company SID"
// @Param id path int true "Work order ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.APIResponse
// @Router /api/work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteWorkOrderUC.Execute(c.Request.Context(), usecases.DeleteWorkOrderCommand{
		ID:        id,
		CompanyID: companyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
