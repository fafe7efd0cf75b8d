package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
)

// Migrate brings the schema up to date. Parents migrate before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Blog{},
		&models.Comment{},
		&models.Rating{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return createProductNameIndex(db)
}

// createProductNameIndex enforces case-insensitive uniqueness on
// product names. GORM struct tags cannot express a functional index,
// and the SQL differs per dialect, so it is created here.
func createProductNameIndex(db *gorm.DB) error {
	var stmt string
	switch db.Dialector.Name() {
	case "sqlite":
		stmt = `CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_ci ON products (name COLLATE NOCASE)`
	default:
		stmt = `CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_ci ON products (LOWER(name))`
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to create product name index: %w", err)
	}
	return nil
}
