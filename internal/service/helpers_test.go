package service_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/logger"
	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/testdb"
)

func newRecipeService(t *testing.T) (*gorm.DB, *service.RecipeService) {
	t.Helper()
	db := testdb.Open(t)
	return db, service.NewRecipeService(db, nil, logger.NewNop())
}

func createUser(t *testing.T, db *gorm.DB, role models.Role) models.User {
	t.Helper()
	suffix := uuid.NewString()[:8]
	user := models.User{
		Username:     fmt.Sprintf("user-%s", suffix),
		Email:        fmt.Sprintf("user-%s@example.com", suffix),
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func f64(v float64) *float64 { return &v }
