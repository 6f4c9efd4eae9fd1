package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"upkeep/internal/infrastructure/config"
	"upkeep/internal/infrastructure/database"
	"upkeep/internal/infrastructure/migration"
	httpRouter "upkeep/internal/interfaces/http"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Upkeep HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(env, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// The entitlement cache and rate limiter degrade gracefully, so a
		// missing Redis is a warning rather than a startup failure.
		log.Warnw("redis unavailable, caching and rate limiting degraded", "error", err)
	}

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(environment string, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == "production" {
			log.Warnw("auto-migration is enabled in production environment, this is not recommended")
		}

		log.Infow("running auto-migration")
		migrationManager := migration.NewManager(environment)
		if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	log.Infow("checking migration status")

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		log.Warnw("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	if gooseStrategy, ok := strategy.(*migration.GooseStrategy); ok {
		version, err := gooseStrategy.GetVersion(database.Get())
		if err != nil {
			log.Warnw("failed to check migration status", "error", err)
		} else {
			log.Infow("current migration version", "version", version)
		}
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
