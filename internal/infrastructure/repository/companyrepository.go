package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upkeep/internal/domain/company"
	"upkeep/internal/infrastructure/persistence/mappers"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

func NewCompanyRepository(gormDB *gorm.DB, logger logger.Interface) *CompanyRepository {
	return &CompanyRepository{
		db:     gormDB,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by sid: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                    model.Name,
			"plan_type":               model.PlanType,
			"subscription_status":     model.SubscriptionStatus,
			"subscription_start_date": model.SubscriptionStartDate,
			"subscription_end_date":   model.SubscriptionEndDate,
			"updated_at":              model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CompanyModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	var modelList []*models.CompanyModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count companies", "error", err)
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	query = query.Order("created_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map companies: %w", err)
	}

	return entities, total, nil
}
