package migration

import (
	"upkeep/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.WorkOrderModel{},
		&models.WorkOrderSequenceModel{},
		&models.SubscriptionHistoryModel{},
		&models.ContactMessageModel{},
	}
}
