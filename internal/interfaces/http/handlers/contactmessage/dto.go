package contactmessage

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"upkeep/internal/application/contact/usecases"
)

type CreateMessageRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=contact custom_solution"`
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"company_name" binding:"max=200"`
	Body        string `json:"body" binding:"required,max=10000"`
}

func (r *CreateMessageRequest) ToCommand() usecases.CreateMessageCommand {
	return usecases.CreateMessageCommand{
		Kind:        r.Kind,
		Name:        r.Name,
		Email:       r.Email,
		CompanyName: r.CompanyName,
		Body:        r.Body,
	}
}

func parseListMessagesQuery(c *gin.Context) usecases.ListMessagesQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return usecases.ListMessagesQuery{
		Kind:     c.Query("kind"),
		Page:     page,
		PageSize: pageSize,
	}
}
