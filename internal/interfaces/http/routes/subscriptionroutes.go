package routes

import (
	"github.com/gin-gonic/gin"

	subscriptionhandlers "upkeep/internal/interfaces/http/handlers/subscription"
	"upkeep/internal/interfaces/http/middleware"
)

type SubscriptionRouteConfig struct {
	SubscriptionHandler *subscriptionhandlers.SubscriptionHandler
	RateLimiter         *middleware.RateLimiter
}

func SetupSubscriptionRoutes(engine *gin.Engine, config *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/api/subscriptions")
	{
		subscriptions.POST("/create-trial", config.RateLimiter.Limit(), config.SubscriptionHandler.StartTrial)
		subscriptions.POST("/create-checkout-session", config.RateLimiter.Limit(), config.SubscriptionHandler.CreateCheckoutSession)

		// Called by the checkout provider, not the browser.
		subscriptions.POST("/checkout-callback", config.SubscriptionHandler.CheckoutCallback)

		subscriptions.POST("/cancel", config.SubscriptionHandler.CancelSubscription)
		subscriptions.GET("/company/:sid", config.SubscriptionHandler.GetSubscription)
	}
}
