package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/types"
)

func TestCreateRecipePersistsFullAggregate(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	soups := createCategory(t, db, "Soups")
	dinner := createCategory(t, db, "Dinner")

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:       "Carrot Soup",
		Description: "A simple soup",
		Text:        "Chop, boil, blend.",
		Status:      "PUBLISHED",
		Calories:    f64(240),
		AuthorID:    author.ID,
		CategoryIDs: []uuid.UUID{soups.ID, dinner.ID},
		Ingredients: []types.IngredientInput{
			{ProductName: "Carrot", Quantity: f64(300), Unit: "g"},
			{ProductName: "Onion", Quantity: f64(1), Unit: "pcs"},
			{ProductName: "Vegetable Stock", Quantity: f64(0.5), Unit: "l"},
		},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Carrot Soup", created.Title)
	assert.Equal(t, "PUBLISHED", created.Status)
	assert.Equal(t, author.ID, created.Author.ID)
	assert.Len(t, created.Categories, 2)
	require.Len(t, created.Ingredients, 3)
	assert.Equal(t, "Carrot", created.Ingredients[0].ProductName)
	assert.Equal(t, 300.0, created.Ingredients[0].Quantity)
	assert.Equal(t, "pcs", created.Ingredients[1].Unit)

	// Every line carries the persisted recipe id and a real product id.
	for _, line := range created.Ingredients {
		assert.Equal(t, created.ID, line.RecipeID)
		assert.NotEqual(t, uuid.Nil, line.ProductID)
	}

	loaded, err := recipes.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Ingredients, 3)
	assert.EqualValues(t, 3, countRows(t, db, &models.Product{}))
}

func TestCreateRecipeReusesProductsCaseInsensitively(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	existing := models.Product{Name: "Flour"}
	require.NoError(t, db.Create(&existing).Error)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Bread",
		Text:     "Mix and bake.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "  flour  ", Quantity: f64(500)},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Ingredients, 1)
	assert.Equal(t, existing.ID, created.Ingredients[0].ProductID)
	assert.Equal(t, "Flour", created.Ingredients[0].ProductName)
	assert.EqualValues(t, 1, countRows(t, db, &models.Product{}))
}

func TestCreateRecipeCollapsesDuplicateProductNames(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Stew",
		Text:     "Simmer slowly.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Carrot", Quantity: f64(100), Unit: "g"},
			{ProductName: "Potato", Quantity: f64(400), Unit: "g"},
			{ProductName: "carrot", Quantity: f64(250), Unit: "g"},
		},
	})
	require.NoError(t, err)

	// The duplicate collapses to one line, last occurrence winning, and
	// keeps the position of its first occurrence.
	require.Len(t, created.Ingredients, 2)
	assert.Equal(t, "Carrot", created.Ingredients[0].ProductName)
	assert.Equal(t, 250.0, created.Ingredients[0].Quantity)
	assert.Equal(t, "Potato", created.Ingredients[1].ProductName)
	assert.EqualValues(t, 2, countRows(t, db, &models.Product{}))
}

func TestCreateRecipeAppliesLineDefaults(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Tea",
		Text:     "Steep.",
		Status:   "something-unknown",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Black Tea"},
			{ProductName: "Honey", Quantity: f64(15), Unit: "   "},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", created.Status)
	require.Len(t, created.Ingredients, 2)
	assert.Equal(t, 0.0, created.Ingredients[0].Quantity)
	assert.Equal(t, "g", created.Ingredients[0].Unit)
	assert.Equal(t, "g", created.Ingredients[1].Unit)
}

func TestCreateRecipeForbiddenForReaderRole(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	reader := createUser(t, db, models.RoleUser)

	_, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Nope",
		Text:     "Not allowed.",
		AuthorID: reader.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Salt"},
		},
	})
	require.ErrorIs(t, err, service.ErrForbidden)

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Product{}))
}

func TestCreateRecipeUnknownAuthor(t *testing.T) {
	_, recipes := newRecipeService(t)

	_, err := recipes.Create(context.Background(), types.RecipeRequest{
		Title:    "Ghost",
		Text:     "No author.",
		AuthorID: uuid.New(),
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateRecipeUnknownCategoryRollsBackEverything(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	_, err := recipes.Create(ctx, types.RecipeRequest{
		Title:       "Half done",
		Text:        "Should not persist.",
		AuthorID:    author.ID,
		CategoryIDs: []uuid.UUID{uuid.New()},
		Ingredients: []types.IngredientInput{
			{ProductName: "Butter"},
		},
	})
	require.ErrorIs(t, err, service.ErrNotFound)

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Ingredient{}))
}

func TestCreateRecipeRollsBackCatalogInsertsOnLineFailure(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	// The first line inserts a new product before the second line fails;
	// the rollback must take the insert with it.
	_, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Partial",
		Text:     "Second line is invalid.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Saffron", Quantity: f64(1)},
			{ProductName: "   "},
		},
	})
	require.ErrorIs(t, err, service.ErrValidation)

	assert.EqualValues(t, 0, countRows(t, db, &models.Recipe{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Product{}))
}

func TestCreateRecipeValidation(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	_, err := recipes.Create(ctx, types.RecipeRequest{Title: "   ", Text: "body", AuthorID: author.ID})
	require.ErrorIs(t, err, service.ErrValidation)

	_, err = recipes.Create(ctx, types.RecipeRequest{Title: "Title", Text: "", AuthorID: author.ID})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateRecipeReplacesIngredientSet(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Soup",
		Text:     "Boil.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Carrot", Quantity: f64(200), Unit: "g"},
			{ProductName: "Potato", Quantity: f64(300), Unit: "g"},
		},
	})
	require.NoError(t, err)

	var carrot models.Product
	require.NoError(t, db.Where("name = ?", "Carrot").First(&carrot).Error)

	updated, err := recipes.Update(ctx, created.ID, types.RecipeRequest{
		Title:    "Soup",
		Text:     "Boil.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Carrot", Quantity: f64(150), Unit: "g"},
			{ProductName: "Onion", Quantity: f64(1), Unit: "pcs"},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, carrot.ID, updated.Ingredients[0].ProductID)
	assert.Equal(t, 150.0, updated.Ingredients[0].Quantity)
	assert.Equal(t, "Onion", updated.Ingredients[1].ProductName)

	// Potato's line is gone but the catalog row survives.
	assert.EqualValues(t, 2, countRows(t, db, &models.Ingredient{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.Product{}))
}

func TestUpdateRecipeClearsIngredients(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Salad",
		Text:     "Toss.",
		AuthorID: author.ID,
		Ingredients: []types.IngredientInput{
			{ProductName: "Lettuce", Quantity: f64(1), Unit: "pcs"},
		},
	})
	require.NoError(t, err)

	updated, err := recipes.Update(ctx, created.ID, types.RecipeRequest{
		Title:    "Salad",
		Text:     "Toss.",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	assert.Empty(t, updated.Ingredients)
	assert.EqualValues(t, 0, countRows(t, db, &models.Ingredient{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Product{}))
}

func TestUpdateRecipeKeepsStatusWhenOmitted(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Cake",
		Text:     "Bake.",
		Status:   "PUBLISHED",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	updated, err := recipes.Update(ctx, created.ID, types.RecipeRequest{
		Title:    "Better Cake",
		Text:     "Bake longer.",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "PUBLISHED", updated.Status)
	assert.Equal(t, "Better Cake", updated.Title)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	db, recipes := newRecipeService(t)

	author := createUser(t, db, models.RoleAuthor)

	_, err := recipes.Update(context.Background(), uuid.New(), types.RecipeRequest{
		Title:    "Missing",
		Text:     "Missing.",
		AuthorID: author.ID,
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateRecipeForbiddenForReaderRole(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	reader := createUser(t, db, models.RoleUser)

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:    "Original",
		Text:     "Original.",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	_, err = recipes.Update(ctx, created.ID, types.RecipeRequest{
		Title:    "Hijacked",
		Text:     "Hijacked.",
		AuthorID: reader.ID,
	})
	require.ErrorIs(t, err, service.ErrForbidden)

	loaded, err := recipes.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", loaded.Title)
}

func TestDeleteRecipeRemovesOwnedRowsOnly(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	soups := createCategory(t, db, "Soups")

	created, err := recipes.Create(ctx, types.RecipeRequest{
		Title:       "Borscht",
		Text:        "Cook.",
		AuthorID:    author.ID,
		CategoryIDs: []uuid.UUID{soups.ID},
		Ingredients: []types.IngredientInput{
			{ProductName: "Beetroot", Quantity: f64(400), Unit: "g"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, recipes.Delete(ctx, created.ID))

	_, err = recipes.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, service.ErrNotFound)

	assert.EqualValues(t, 0, countRows(t, db, &models.Ingredient{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Product{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Category{}))
}

func TestDeleteRecipeAbsentIDIsNoError(t *testing.T) {
	_, recipes := newRecipeService(t)
	require.NoError(t, recipes.Delete(context.Background(), uuid.New()))
}

func TestFindAllFiltersByStatus(t *testing.T) {
	db, recipes := newRecipeService(t)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)

	_, err := recipes.Create(ctx, types.RecipeRequest{
		Title: "Public", Text: "x", Status: "PUBLISHED", AuthorID: author.ID,
	})
	require.NoError(t, err)
	_, err = recipes.Create(ctx, types.RecipeRequest{
		Title: "Draft", Text: "x", AuthorID: author.ID,
	})
	require.NoError(t, err)

	published := models.StatusPublished
	list, err := recipes.FindAll(ctx, &published)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Public", list[0].Title)

	all, err := recipes.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindByIDNotFound(t *testing.T) {
	_, recipes := newRecipeService(t)
	_, err := recipes.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrNotFound)
}
