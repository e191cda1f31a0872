package migration

import (
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema is built from, in
// dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.GuildConfigModel{},
		&models.TicketCategoryModel{},
		&models.CategoryFieldModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
	}
}

// Run applies the schema via gorm AutoMigrate.
func Run(db *gorm.DB, log logger.Interface) error {
	models := AutoMigrateModels()
	log.Infow("running schema migration", "models", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Info("schema migration completed")
	return nil
}
