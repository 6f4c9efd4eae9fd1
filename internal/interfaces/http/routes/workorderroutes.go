package routes

import (
	"github.com/gin-gonic/gin"

	workorderhandlers "upkeep/internal/interfaces/http/handlers/workorder"
	"upkeep/internal/interfaces/http/middleware"
)

type WorkOrderRouteConfig struct {
	WorkOrderHandler      *workorderhandlers.WorkOrderHandler
	EntitlementMiddleware *middleware.EntitlementMiddleware
}

func SetupWorkOrderRoutes(engine *gin.Engine, config *WorkOrderRouteConfig) {
	workOrders := engine.Group("/api/work-orders")
	workOrders.Use(config.EntitlementMiddleware.RequireActiveSubscription())
	{
		workOrders.POST("", config.WorkOrderHandler.CreateWorkOrder)
		workOrders.GET("", config.WorkOrderHandler.ListWorkOrders)
		workOrders.GET("/:id", config.WorkOrderHandler.GetWorkOrder)
		workOrders.PUT("/:id", config.WorkOrderHandler.UpdateWorkOrder)
		workOrders.DELETE("/:id", config.WorkOrderHandler.DeleteWorkOrder)
	}
}
