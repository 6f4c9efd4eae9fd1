package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upkeep/internal/domain/workorder"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
)

// WorkOrderSequenceRepository allocates work order numbers from the
// per-company counter row. The increment runs inside the caller's
// transaction, so the counter only advances when the work order insert
// commits with it. The counter row doubles as a lock: concurrent allocations
// for the same company serialize on the row update.
type WorkOrderSequenceRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewWorkOrderSequenceRepository(gormDB *gorm.DB, logger logger.Interface) *WorkOrderSequenceRepository {
	return &WorkOrderSequenceRepository{
		db:     gormDB,
		logger: logger,
	}
}

func (r *WorkOrderSequenceRepository) NextNumber(ctx context.Context, companyID uint) (string, error) {
	if companyID == 0 {
		return "", fmt.Errorf("company ID is required")
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := r.increment(tx, companyID)
	if result.Error != nil {
		return "", fmt.Errorf("failed to advance work order sequence: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		value, err := r.seedSequence(tx, companyID)
		if err != nil {
			return "", err
		}
		if value != 0 {
			return workorder.FormatNumber(value), nil
		}

		// Another writer created the row between our update and insert.
		result = r.increment(tx, companyID)
		if result.Error != nil {
			return "", fmt.Errorf("failed to advance work order sequence: %w", result.Error)
		}
	}

	var seq models.WorkOrderSequenceModel
	if err := tx.Where("company_id = ?", companyID).First(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to read work order sequence: %w", err)
	}

	return workorder.FormatNumber(seq.LastValue), nil
}

func (r *WorkOrderSequenceRepository) increment(tx *gorm.DB, companyID uint) *gorm.DB {
	return tx.
		Model(&models.WorkOrderSequenceModel{}).
		Where("company_id = ?", companyID).
		Update("last_value", gorm.Expr("last_value + 1"))
}

// seedSequence creates the counter row for a company that has never
// allocated through the sequence. Existing work orders, soft-deleted ones
// included, set the starting point so legacy numbers are never reissued.
// Returns the allocated value, or 0 when a concurrent writer created the row
// first and the caller must increment again.
func (r *WorkOrderSequenceRepository) seedSequence(tx *gorm.DB, companyID uint) (uint64, error) {
	var seed uint64

	var latest models.WorkOrderModel
	err := tx.Unscoped().
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		First(&latest).Error
	switch err {
	case nil:
		seed = workorder.ParseNumber(latest.Number)
	case gorm.ErrRecordNotFound:
		seed = 0
	default:
		return 0, fmt.Errorf("failed to find latest work order for sequence seed: %w", err)
	}

	seq := &models.WorkOrderSequenceModel{
		CompanyID: companyID,
		LastValue: seed + 1,
	}
	if err := tx.Create(seq).Error; err != nil {
		if errors.IsDuplicateError(err) {
			r.logger.Debugw("work order sequence row already created concurrently", "company_id", companyID)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to seed work order sequence: %w", err)
	}

	return seq.LastValue, nil
}
