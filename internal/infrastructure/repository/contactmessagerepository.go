package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upkeep/internal/domain/contact"
	"upkeep/internal/infrastructure/persistence/mappers"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
)

type ContactMessageRepository struct {
	db     *gorm.DB
	mapper mappers.ContactMessageMapper
	logger logger.Interface
}

func NewContactMessageRepository(gormDB *gorm.DB, logger logger.Interface) *ContactMessageRepository {
	return &ContactMessageRepository{
		db:     gormDB,
		mapper: mappers.NewContactMessageMapper(),
		logger: logger,
	}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *contact.Message) error {
	model, err := r.mapper.ToModel(message)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	message.SetID(model.ID)
	return nil
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id uint) (*contact.Message, error) {
	var model models.ContactMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ContactMessageRepository) List(ctx context.Context, filter contact.Filter) ([]*contact.Message, int64, error) {
	var modelList []*models.ContactMessageModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ContactMessageModel{})

	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count contact messages", "error", err)
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list contact messages", "error", err)
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map contact messages: %w", err)
	}

	return entities, total, nil
}
