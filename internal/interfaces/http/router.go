package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"upkeep/internal/application/billing/checkoutgateway"
	companyusecases "upkeep/internal/application/company/usecases"
	contactusecases "upkeep/internal/application/contact/usecases"
	workorderusecases "upkeep/internal/application/workorder/usecases"
	"upkeep/internal/infrastructure/cache"
	"upkeep/internal/infrastructure/config"
	"upkeep/internal/infrastructure/repository"
	contacthandlers "upkeep/internal/interfaces/http/handlers/contactmessage"
	subscriptionhandlers "upkeep/internal/interfaces/http/handlers/subscription"
	workorderhandlers "upkeep/internal/interfaces/http/handlers/workorder"
	"upkeep/internal/interfaces/http/middleware"
	"upkeep/internal/interfaces/http/routes"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/services/markdown"

	_ "upkeep/docs"
)

// Router wires repositories, usecases and handlers onto a gin engine.
type Router struct {
	engine                *gin.Engine
	cfg                   *config.Config
	workOrderHandler      *workorderhandlers.WorkOrderHandler
	subscriptionHandler   *subscriptionhandlers.SubscriptionHandler
	contactMessageHandler *contacthandlers.ContactMessageHandler
	entitlementMiddleware *middleware.EntitlementMiddleware
	rateLimiter           *middleware.RateLimiter
	logger                logger.Interface
}

// NewRouter builds the full HTTP dependency graph. The checkout gateway is
// selected by configuration; only the mock provider ships in this repository,
// real providers implement checkoutgateway.CheckoutGateway.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	companyRepo := repository.NewCompanyRepository(gormDB, log)
	workOrderRepo := repository.NewWorkOrderRepository(gormDB, log)
	sequenceRepo := repository.NewWorkOrderSequenceRepository(gormDB, log)
	historyRepo := repository.NewSubscriptionHistoryRepository(gormDB, log)
	messageRepo := repository.NewContactMessageRepository(gormDB, log)

	txMgr := db.NewTransactionManager(gormDB)
	entitlementCache := cache.NewEntitlementCache(redisClient)
	gateway := newCheckoutGateway(cfg, log)
	markdownSvc := markdown.NewMarkdownService()

	createWorkOrderUC := workorderusecases.NewCreateWorkOrderUseCase(workOrderRepo, sequenceRepo, txMgr, log)
	getWorkOrderUC := workorderusecases.NewGetWorkOrderUseCase(workOrderRepo, log)
	listWorkOrdersUC := workorderusecases.NewListWorkOrdersUseCase(workOrderRepo, log)
	updateWorkOrderUC := workorderusecases.NewUpdateWorkOrderUseCase(workOrderRepo, log)
	deleteWorkOrderUC := workorderusecases.NewDeleteWorkOrderUseCase(workOrderRepo, log)

	startTrialUC := companyusecases.NewStartTrialUseCase(companyRepo, historyRepo, txMgr, entitlementCache, cfg.Subscription.TrialDays, log)
	createSessionUC := companyusecases.NewCreateCheckoutSessionUseCase(companyRepo, gateway, cfg.Subscription, cfg.Checkout, log)
	completeCheckoutUC := companyusecases.NewCompleteCheckoutUseCase(companyRepo, historyRepo, txMgr, entitlementCache, log)
	cancelSubscriptionUC := companyusecases.NewCancelSubscriptionUseCase(companyRepo, entitlementCache, log)
	getSubscriptionUC := companyusecases.NewGetSubscriptionUseCase(companyRepo, entitlementCache, log)

	createMessageUC := contactusecases.NewCreateMessageUseCase(messageRepo, markdownSvc, log)
	listMessagesUC := contactusecases.NewListMessagesUseCase(messageRepo, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		workOrderHandler: workorderhandlers.NewWorkOrderHandler(
			createWorkOrderUC, getWorkOrderUC, listWorkOrdersUC, updateWorkOrderUC, deleteWorkOrderUC, log,
		),
		subscriptionHandler: subscriptionhandlers.NewSubscriptionHandler(
			startTrialUC, createSessionUC, completeCheckoutUC, cancelSubscriptionUC, getSubscriptionUC, gateway, log,
		),
		contactMessageHandler: contacthandlers.NewContactMessageHandler(createMessageUC, listMessagesUC, log),
		entitlementMiddleware: middleware.NewEntitlementMiddleware(companyRepo, entitlementCache, log),
		rateLimiter:           middleware.NewRateLimiter(redisClient, 20, 1*time.Minute),
		logger:                log,
	}
}

func newCheckoutGateway(cfg *config.Config, log logger.Interface) checkoutgateway.CheckoutGateway {
	if cfg.Checkout.Provider != "mock" {
		log.Warnw("unknown checkout provider, falling back to mock", "provider", cfg.Checkout.Provider)
	}
	return checkoutgateway.NewMockGateway()
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "upkeep",
		})
	})

	routes.SetupWorkOrderRoutes(r.engine, &routes.WorkOrderRouteConfig{
		WorkOrderHandler:      r.workOrderHandler,
		EntitlementMiddleware: r.entitlementMiddleware,
	})
	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		RateLimiter:         r.rateLimiter,
	})
	routes.SetupContactMessageRoutes(r.engine, &routes.ContactMessageRouteConfig{
		ContactMessageHandler: r.contactMessageHandler,
		RateLimiter:           r.rateLimiter,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
