package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
)

// ProductCatalog resolves free-text ingredient names against the shared,
// deduplicated product table. Matching is case-insensitive; a never-seen
// name inserts a new row with the trimmed, case-preserved spelling.
//
// Two concurrent resolutions of the same new name can both observe
// "absent" and both insert; the case-insensitive unique index created in
// database.Migrate is the final arbiter. The losing writer's insert fails,
// in which case Resolve re-reads the now-existing row exactly once.
type ProductCatalog struct {
	log *zap.SugaredLogger
}

func NewProductCatalog(log *zap.SugaredLogger) *ProductCatalog {
	return &ProductCatalog{log: log}
}

// Resolve returns the catalog product for name, inserting it if absent.
// It runs on the caller's transaction handle so the lookup and any insert
// share the enclosing aggregate transaction.
func (c *ProductCatalog) Resolve(tx *gorm.DB, name string) (*models.Product, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: ingredient product name is required", ErrValidation)
	}

	product, err := c.lookup(tx, trimmed)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &models.Product{Name: trimmed}
	// The insert runs in a nested transaction (a savepoint on postgres) so
	// a lost uniqueness race does not poison the enclosing transaction.
	insertErr := tx.Transaction(func(inner *gorm.DB) error {
		return inner.Create(created).Error
	})
	if insertErr == nil {
		if c.log != nil {
			c.log.Infow("created product", "product_id", created.ID, "name", created.Name)
		}
		return created, nil
	}

	// Lost the race: a concurrent writer inserted the same name first, so
	// the row must exist now. One re-read, then give up.
	product, err = c.lookup(tx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: product %q: %v", ErrConflict, trimmed, insertErr)
	}
	return product, nil
}

func (c *ProductCatalog) lookup(tx *gorm.DB, name string) (*models.Product, error) {
	var product models.Product
	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
