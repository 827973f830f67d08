package database

import (
	"fmt"

	"gorm.io/gorm"

	"hireboard_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model, including the
// unique index that backs the one-application-per-job rule.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension present.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.JobPosition{},
		&models.FormField{},
		&models.Application{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
