package routes

import (
	"github.com/gin-gonic/gin"

	contacthandlers "upkeep/internal/interfaces/http/handlers/contactmessage"
	"upkeep/internal/interfaces/http/middleware"
)

type ContactMessageRouteConfig struct {
	ContactMessageHandler *contacthandlers.ContactMessageHandler
	RateLimiter           *middleware.RateLimiter
}

func SetupContactMessageRoutes(engine *gin.Engine, config *ContactMessageRouteConfig) {
	messages := engine.Group("/api/contact-messages")
	{
		messages.POST("", config.RateLimiter.Limit(), config.ContactMessageHandler.CreateMessage)
		messages.GET("", config.ContactMessageHandler.ListMessages)
	}
}
