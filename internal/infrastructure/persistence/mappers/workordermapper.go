package mappers

import (
	"fmt"

	"upkeep/internal/domain/workorder"
	vo "upkeep/internal/domain/workorder/value_objects"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/mapper"
)

type WorkOrderMapper interface {
	ToEntity(model *models.WorkOrderModel) (*workorder.WorkOrder, error)
	ToModel(entity *workorder.WorkOrder) (*models.WorkOrderModel, error)
	ToEntities(models []*models.WorkOrderModel) ([]*workorder.WorkOrder, error)
}

type WorkOrderMapperImpl struct{}

func NewWorkOrderMapper() WorkOrderMapper {
	return &WorkOrderMapperImpl{}
}

func (m *WorkOrderMapperImpl) ToEntity(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := workorder.ReconstructWorkOrder(
		model.ID,
		model.Number,
		model.CompanyID,
		model.Title,
		model.Description,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.DueDate,
		model.StartDate,
		model.CompletionDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct work order entity: %w", err)
	}

	return entity, nil
}

func (m *WorkOrderMapperImpl) ToModel(entity *workorder.WorkOrder) (*models.WorkOrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.WorkOrderModel{
		ID:             entity.ID(),
		Number:         entity.Number(),
		CompanyID:      entity.CompanyID(),
		Title:          entity.Title(),
		Description:    entity.Description(),
		Status:         entity.Status().String(),
		Priority:       entity.Priority().String(),
		DueDate:        entity.DueDate(),
		StartDate:      entity.StartDate(),
		CompletionDate: entity.CompletionDate(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *WorkOrderMapperImpl) ToEntities(modelList []*models.WorkOrderModel) ([]*workorder.WorkOrder, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.WorkOrderModel) uint { return model.ID })
}
