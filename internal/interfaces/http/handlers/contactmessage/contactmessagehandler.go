package contactmessage

import (
	"github.com/gin-gonic/gin"

	"upkeep/internal/application/contact/usecases"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

type ContactMessageHandler struct {
	createMessageUC usecases.CreateMessageExecutor
	listMessagesUC  usecases.ListMessagesExecutor
	logger          logger.Interface
}

func NewContactMessageHandler(
	createMessageUC usecases.CreateMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	log logger.Interface,
) *ContactMessageHandler {
	return &ContactMessageHandler{
		createMessageUC: createMessageUC,
		listMessagesUC:  listMessagesUC,
		logger:          log,
	}
}

// CreateMessage handles POST /api/contact-messages
// @Summary Submit contact message
// @Description Accept a contact or custom-solution message; the markdown body is rendered and sanitized
// @Tags ContactMessages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message fields"
// @Success 201 {object} utils.APIResponse{data=usecases.MessageResult}
// @Failure 400 {object} utils.APIResponse
// @Router /api/contact-messages [post]
func (h *ContactMessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createMessageUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message received")
}

// ListMessages handles GET /api/contact-messages
// @Summary List contact messages
// @Description Page through received messages, optionally filtered by kind
// @Tags ContactMessages
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param kind query string false "Message kind" Enums(contact, custom_solution)
// @Success 200 {object} utils.APIResponse{data=usecases.ListMessagesResult}
// @Router /api/contact-messages [get]
func (h *ContactMessageHandler) ListMessages(c *gin.Context) {
	result, err := h.listMessagesUC.Execute(c.Request.Context(), parseListMessagesQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
