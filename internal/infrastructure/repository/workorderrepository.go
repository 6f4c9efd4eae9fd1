package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upkeep/internal/domain/workorder"
	"upkeep/internal/infrastructure/persistence/mappers"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
)

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
	logger logger.Interface
}

func NewWorkOrderRepository(gormDB *gorm.DB, logger logger.Interface) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     gormDB,
		mapper: mappers.NewWorkOrderMapper(),
		logger: logger,
	}
}

func (r *WorkOrderRepository) Save(ctx context.Context, wo *workorder.WorkOrder) error {
	model, err := r.mapper.ToModel(wo)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work order: %w", err)
	}

	wo.SetID(model.ID)
	return nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetLatestByCompanyID looks across soft-deleted rows as well. The numbering
// sequence seeds itself from this row, and a deleted work order still pins
// the high-water mark.
func (r *WorkOrderRepository) GetLatestByCompanyID(ctx context.Context, companyID uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Unscoped().
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest work order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *WorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	model, err := r.mapper.ToModel(wo)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkOrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":           model.Title,
			"description":     model.Description,
			"status":          model.Status,
			"priority":        model.Priority,
			"due_date":        model.DueDate,
			"start_date":      model.StartDate,
			"completion_date": model.CompletionDate,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update work order: %w", result.Error)
	}

	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.WorkOrderModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	var modelList []*models.WorkOrderModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Where("company_id = ?", filter.CompanyID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count work orders", "error", err, "company_id", filter.CompanyID)
		return nil, 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list work orders", "error", err, "company_id", filter.CompanyID)
		return nil, 0, fmt.Errorf("failed to list work orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map work orders: %w", err)
	}

	return entities, total, nil
}
