package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"upkeep/internal/domain/billing"
	"upkeep/internal/infrastructure/persistence/mappers"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
)

// SubscriptionHistoryRepository persists the append-only billing ledger.
type SubscriptionHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionHistoryMapper
	logger logger.Interface
}

func NewSubscriptionHistoryRepository(gormDB *gorm.DB, logger logger.Interface) *SubscriptionHistoryRepository {
	return &SubscriptionHistoryRepository{
		db:     gormDB,
		mapper: mappers.NewSubscriptionHistoryMapper(),
		logger: logger,
	}
}

func (r *SubscriptionHistoryRepository) Append(ctx context.Context, entry *billing.HistoryEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

func (r *SubscriptionHistoryRepository) FindByPaymentRef(ctx context.Context, paymentRef string) (*billing.HistoryEntry, error) {
	var model models.SubscriptionHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("payment_ref = ?", paymentRef).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find history entry by payment ref: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionHistoryRepository) ListByCompanyID(ctx context.Context, companyID uint, page, pageSize int) ([]*billing.HistoryEntry, int64, error) {
	var modelList []*models.SubscriptionHistoryModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.SubscriptionHistoryModel{}).
		Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count history entries", "error", err, "company_id", companyID)
		return nil, 0, fmt.Errorf("failed to count history entries: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list history entries", "error", err, "company_id", companyID)
		return nil, 0, fmt.Errorf("failed to list history entries: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map history entries: %w", err)
	}

	return entities, total, nil
}
