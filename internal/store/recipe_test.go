package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/store"
	"github.com/culinarybook/backend/internal/testdb"
)

func seedRecipe(t *testing.T, db *gorm.DB) (*models.Recipe, models.Product) {
	t.Helper()

	user := models.User{
		Username:     "author-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleAuthor,
	}
	require.NoError(t, db.Create(&user).Error)

	category := models.Category{Name: "Baking"}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{Name: "Yeast"}
	require.NoError(t, db.Create(&product).Error)

	recipe := &models.Recipe{
		Title:      "Loaf",
		Text:       "Knead and bake.",
		Status:     models.StatusPending,
		UserID:     user.ID,
		User:       user,
		Categories: []models.Category{category},
	}
	st := store.NewRecipeStore(db)
	require.NoError(t, st.Save(recipe))
	require.NoError(t, st.ReplaceIngredients(recipe.ID, []models.Ingredient{
		{RecipeID: recipe.ID, ProductID: product.ID, Quantity: 7, Unit: "g"},
	}))

	return recipe, product
}

func TestSaveAndFindByIDLoadsFullAggregate(t *testing.T) {
	db := testdb.Open(t)
	recipe, product := seedRecipe(t, db)

	loaded, err := store.NewRecipeStore(db).FindByID(recipe.ID)
	require.NoError(t, err)

	assert.Equal(t, "Loaf", loaded.Title)
	assert.Equal(t, recipe.UserID, loaded.User.ID)
	require.Len(t, loaded.Categories, 1)
	assert.Equal(t, "Baking", loaded.Categories[0].Name)
	require.Len(t, loaded.Ingredients, 1)
	assert.Equal(t, product.ID, loaded.Ingredients[0].ProductID)
	assert.Equal(t, "Yeast", loaded.Ingredients[0].Product.Name)
}

func TestFindByIDMissingReturnsRecordNotFound(t *testing.T) {
	db := testdb.Open(t)

	_, err := store.NewRecipeStore(db).FindByID(uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindAllByStatusFilters(t *testing.T) {
	db := testdb.Open(t)
	recipe, _ := seedRecipe(t, db)

	st := store.NewRecipeStore(db)

	pending := models.StatusPending
	list, err := st.FindAllByStatus(&pending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recipe.ID, list[0].ID)

	published := models.StatusPublished
	list, err = st.FindAllByStatus(&published)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = st.FindAllByStatus(nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReplaceIngredientsSwapsTheWholeSet(t *testing.T) {
	db := testdb.Open(t)
	recipe, _ := seedRecipe(t, db)

	flour := models.Product{Name: "Flour"}
	require.NoError(t, db.Create(&flour).Error)

	st := store.NewRecipeStore(db)
	require.NoError(t, st.ReplaceIngredients(recipe.ID, []models.Ingredient{
		{RecipeID: recipe.ID, ProductID: flour.ID, Quantity: 500, Unit: "g"},
	}))

	loaded, err := st.FindByID(recipe.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ingredients, 1)
	assert.Equal(t, flour.ID, loaded.Ingredients[0].ProductID)
}

func TestReplaceIngredientsWithEmptySetClears(t *testing.T) {
	db := testdb.Open(t)
	recipe, _ := seedRecipe(t, db)

	st := store.NewRecipeStore(db)
	require.NoError(t, st.ReplaceIngredients(recipe.ID, nil))

	loaded, err := st.FindByID(recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Ingredients)
}

func TestDeleteByIDRemovesOwnedRows(t *testing.T) {
	db := testdb.Open(t)
	recipe, _ := seedRecipe(t, db)

	st := store.NewRecipeStore(db)
	require.NoError(t, st.DeleteByID(recipe.ID))

	_, err := st.FindByID(recipe.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var ingredients int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredients).Error)
	assert.EqualValues(t, 0, ingredients)

	var joinRows int64
	require.NoError(t, db.Table("recipe_categories").Count(&joinRows).Error)
	assert.EqualValues(t, 0, joinRows)

	// The shared catalog and category rows survive.
	var products, categories int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.EqualValues(t, 1, products)
	assert.EqualValues(t, 1, categories)
}
