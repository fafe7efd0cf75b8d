package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/culinarybook/backend/internal/models"
)

// RecipeStore persists the recipe aggregate. Every read eagerly resolves
// the author, the category set and the ingredient collection (with its
// products) so the aggregate is fully materialized before it crosses the
// store boundary; callers never trigger follow-up queries per row.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// WithTx returns a store bound to the given transaction handle.
func (s *RecipeStore) WithTx(tx *gorm.DB) *RecipeStore {
	return &RecipeStore{db: tx}
}

func (s *RecipeStore) eager() *gorm.DB {
	return s.db.
		Preload("User").
		Preload("Categories").
		Preload("Ingredients.Product")
}

// FindAllByStatus returns every recipe with the given status; a nil status
// returns all recipes regardless of moderation state.
func (s *RecipeStore) FindAllByStatus(status *models.ContentStatus) ([]models.Recipe, error) {
	query := s.eager()
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByID returns the fully loaded aggregate or gorm.ErrRecordNotFound.
func (s *RecipeStore) FindByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.eager().First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Save upserts the recipe row and replaces its category associations.
// Ingredient lines are NOT written here: they require the recipe id to
// exist first and are persisted by the caller through ReplaceIngredients.
func (s *RecipeStore) Save(recipe *models.Recipe) error {
	if err := s.db.Omit(clause.Associations).Save(recipe).Error; err != nil {
		return err
	}
	return s.db.Model(recipe).Association("Categories").Replace(recipe.Categories)
}

// ReplaceIngredients deletes every ingredient row of the recipe and
// inserts the given lines as one atomic step. Inside an enclosing
// transaction the nested Transaction call degrades to a savepoint.
func (s *RecipeStore) ReplaceIngredients(recipeID uuid.UUID, lines []models.Ingredient) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Omit("Product").Create(&lines).Error
	})
}

// DeleteByID removes the recipe together with its owned ingredient rows
// and its category associations. The ingredient delete is explicit rather
// than left to the DB cascade so the behavior holds on sqlite test
// databases that run without foreign key enforcement.
func (s *RecipeStore) DeleteByID(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}
