package mappers

import (
	"fmt"

	"upkeep/internal/domain/contact"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/mapper"
)

type ContactMessageMapper interface {
	ToEntity(model *models.ContactMessageModel) (*contact.Message, error)
	ToModel(entity *contact.Message) (*models.ContactMessageModel, error)
	ToEntities(models []*models.ContactMessageModel) ([]*contact.Message, error)
}

type ContactMessageMapperImpl struct{}

func NewContactMessageMapper() ContactMessageMapper {
	return &ContactMessageMapperImpl{}
}

func (m *ContactMessageMapperImpl) ToEntity(model *models.ContactMessageModel) (*contact.Message, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := contact.ReconstructMessage(
		model.ID,
		contact.MessageKind(model.Kind),
		model.Name,
		model.Email,
		model.CompanyName,
		model.Body,
		model.BodyHTML,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contact message: %w", err)
	}

	return entity, nil
}

func (m *ContactMessageMapperImpl) ToModel(entity *contact.Message) (*models.ContactMessageModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ContactMessageModel{
		ID:          entity.ID(),
		Kind:        string(entity.Kind()),
		Name:        entity.Name(),
		Email:       entity.Email(),
		CompanyName: entity.CompanyName(),
		Body:        entity.Body(),
		BodyHTML:    entity.BodyHTML(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *ContactMessageMapperImpl) ToEntities(modelList []*models.ContactMessageModel) ([]*contact.Message, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ContactMessageModel) uint { return model.ID })
}
