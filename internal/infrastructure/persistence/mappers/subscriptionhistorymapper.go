package mappers

import (
	"fmt"

	"upkeep/internal/domain/billing"
	vo "upkeep/internal/domain/company/value_objects"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/mapper"
)

type SubscriptionHistoryMapper interface {
	ToEntity(model *models.SubscriptionHistoryModel) (*billing.HistoryEntry, error)
	ToModel(entity *billing.HistoryEntry) (*models.SubscriptionHistoryModel, error)
	ToEntities(models []*models.SubscriptionHistoryModel) ([]*billing.HistoryEntry, error)
}

type SubscriptionHistoryMapperImpl struct{}

func NewSubscriptionHistoryMapper() SubscriptionHistoryMapper {
	return &SubscriptionHistoryMapperImpl{}
}

func (m *SubscriptionHistoryMapperImpl) ToEntity(model *models.SubscriptionHistoryModel) (*billing.HistoryEntry, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := billing.ReconstructHistoryEntry(
		model.ID,
		model.CompanyID,
		vo.PlanType(model.PlanType),
		model.AmountCents,
		model.Currency,
		model.PaymentRef,
		model.PeriodStart,
		model.PeriodEnd,
		billing.EntryStatus(model.Status),
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct history entry: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionHistoryMapperImpl) ToModel(entity *billing.HistoryEntry) (*models.SubscriptionHistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionHistoryModel{
		ID:          entity.ID(),
		CompanyID:   entity.CompanyID(),
		PlanType:    entity.PlanType().String(),
		AmountCents: entity.AmountCents(),
		Currency:    entity.Currency(),
		PaymentRef:  entity.PaymentRef(),
		PeriodStart: entity.PeriodStart(),
		PeriodEnd:   entity.PeriodEnd(),
		Status:      string(entity.Status()),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *SubscriptionHistoryMapperImpl) ToEntities(modelList []*models.SubscriptionHistoryModel) ([]*billing.HistoryEntry, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionHistoryModel) uint { return model.ID })
}
