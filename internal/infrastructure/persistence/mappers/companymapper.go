package mappers

import (
	"fmt"

	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/mapper"
)

type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) (*models.CompanyModel, error)
	ToEntities(models []*models.CompanyModel) ([]*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := company.ReconstructCompany(
		model.ID,
		model.SID,
		model.Name,
		vo.PlanType(model.PlanType),
		vo.SubscriptionStatus(model.SubscriptionStatus),
		model.SubscriptionStartDate,
		model.SubscriptionEndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct company entity: %w", err)
	}

	return entity, nil
}

func (m *CompanyMapperImpl) ToModel(entity *company.Company) (*models.CompanyModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CompanyModel{
		ID:                    entity.ID(),
		SID:                   entity.SID(),
		Name:                  entity.Name(),
		PlanType:              entity.PlanType().String(),
		SubscriptionStatus:    entity.Status().String(),
		SubscriptionStartDate: entity.StartDate(),
		SubscriptionEndDate:   entity.EndDate(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}, nil
}

func (m *CompanyMapperImpl) ToEntities(modelList []*models.CompanyModel) ([]*company.Company, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CompanyModel) uint { return model.ID })
}
