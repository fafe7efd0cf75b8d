package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinarybook/backend/internal/logger"
	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/testdb"
	"github.com/culinarybook/backend/internal/types"
)

func TestRecipeLifecycleOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testdb.OpenPostgres(t)
	recipes := service.NewRecipeService(db, nil, logger.NewNop())
	ctx := context.Background()

	author := models.User{
		Username:     "it-author",
		Email:        "it-author@example.com",
		PasswordHash: "x",
		Role:         models.RoleAuthor,
	}
	require.NoError(t, db.Create(&author).Error)

	qty := 300.0
	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Roast Vegetables",
		Text:     "Roast at 200C.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Carrot", Quantity: &qty, Unit: "g"},
			{ProductName: "Parsnip", Quantity: &qty, Unit: "g"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Ingredients, 2)

	updated, err := recipes.Update(ctx, created.ID, types.RecipeRequest{
		Title:    "Roast Vegetables",
		Text:     "Roast at 200C.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "carrot", Quantity: &qty, Unit: "g"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, created.Ingredients[0].ProductID, updated.Ingredients[0].ProductID)

	require.NoError(t, recipes.Delete(ctx, created.ID))

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 2, products)
}

func TestProductNameIndexIsCaseInsensitiveOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testdb.OpenPostgres(t)

	require.NoError(t, db.Create(&models.Product{Name: "Flour"}).Error)
	err := db.Create(&models.Product{Name: "FLOUR"}).Error
	require.Error(t, err)
}

func TestConcurrentRecipeCreationSharesNewProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testdb.OpenPostgres(t)
	recipes := service.NewRecipeService(db, nil, logger.NewNop())
	ctx := context.Background()

	author := models.User{
		Username:     "it-racer",
		Email:        "it-racer@example.com",
		PasswordHash: "x",
		Role:         models.RoleAuthor,
	}
	require.NoError(t, db.Create(&author).Error)

	qty := 10.0
	var wg sync.WaitGroup
	errs := make([]error, 2)
	ids := make([]uuid.UUID, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := recipes.Create(ctx, types.RecipeRequest{
				Title:    "Racer",
				Text:     "Same new ingredient on both sides.",
				AuthorID: author.ID,
				Ingredients: []types.IngredientInput{
					{ProductName: "Smoked Paprika", Quantity: &qty, Unit: "g"},
				},
			})
			errs[i] = err
			if err == nil {
				ids[i] = created.Ingredients[0].ProductID
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, ids[0], ids[1])

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Where("name = ?", "Smoked Paprika").Count(&products).Error)
	assert.EqualValues(t, 1, products)
}
