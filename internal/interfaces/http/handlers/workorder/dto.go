package workorder

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"upkeep/internal/application/workorder/usecases"
	"upkeep/internal/shared/errors"
)

type CreateWorkOrderRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *CreateWorkOrderRequest) ToCommand(companyID uint) usecases.CreateWorkOrderCommand {
	return usecases.CreateWorkOrderCommand{
		CompanyID:   companyID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

type UpdateWorkOrderRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *UpdateWorkOrderRequest) ToCommand(id, companyID uint) usecases.UpdateWorkOrderCommand {
	return usecases.UpdateWorkOrderCommand{
		ID:          id,
		CompanyID:   companyID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type ListWorkOrdersRequest struct {
	Page     int
	PageSize int
	Status   string
	Priority string
}

func (r *ListWorkOrdersRequest) ToQuery(companyID uint) usecases.ListWorkOrdersQuery {
	return usecases.ListWorkOrdersQuery{
		CompanyID: companyID,
		Status:    r.Status,
		Priority:  r.Priority,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
}

func parseListWorkOrdersRequest(c *gin.Context) *ListWorkOrdersRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return &ListWorkOrdersRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
}

func parseWorkOrderID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError("invalid work order ID")
	}
	return uint(parsed), nil
}
