package migration

import (
	"fmt"

	"gorm.io/gorm"

	"clubgate/internal/infrastructure/persistence/models"
	"clubgate/internal/shared/logger"
)

// AutoMigrate applies the gorm model schema directly. Development
// convenience only; deployed environments run the goose scripts.
func AutoMigrate(db *gorm.DB) error {
	log := logger.NewLogger().With("component", "migration.auto")

	log.Infow("running auto-migration")

	if err := db.AutoMigrate(
		&models.AccessTokenModel{},
		&models.AccessLogModel{},
		&models.MembershipRequestModel{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("auto-migration completed")
	return nil
}
