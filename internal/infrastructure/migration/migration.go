package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"upkeep/internal/shared/constants"
	"upkeep/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a new migration manager. Development environments use
// GORM AutoMigrate; everything else runs the versioned goose scripts.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// SetStrategy sets a new migration strategy
func (m *Manager) SetStrategy(strategy Strategy) {
	m.logger.Infow("changing migration strategy",
		"from", m.strategy.GetName(),
		"to", strategy.GetName())
	m.strategy = strategy
}

// MigrateWithGormAutoMigrate is a convenience function for GORM AutoMigrate
func MigrateWithGormAutoMigrate(db *gorm.DB, models ...interface{}) error {
	manager := NewManagerWithStrategy(NewGormAutoMigrateStrategy())
	return manager.Migrate(db, models...)
}

// MigrateWithGoose is a convenience function for the goose strategy
func MigrateWithGoose(db *gorm.DB, scriptsPath string, models ...interface{}) error {
	manager := NewManagerWithStrategy(NewGooseStrategy(scriptsPath))
	return manager.Migrate(db, models...)
}
