package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/culinarybook/backend/internal/models"
)

// IngredientInput is one requested ingredient line. Quantity and Unit are
// optional; absent quantity persists as 0 and absent/blank unit as "g".
type IngredientInput struct {
	ProductName string   `json:"product_name"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
}

// RecipeRequest is the full-aggregate input for create and update. Update
// has overwrite semantics: omitted optional fields clear the stored values
// (status excepted, an empty status keeps the stored one).
type RecipeRequest struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Text          string            `json:"text"`
	PhotoURL      string            `json:"photo_url"`
	CookingTime   *int              `json:"cooking_time"`
	PrepTime      *int              `json:"prep_time"`
	CookTime      *int              `json:"cook_time"`
	Calories      *float64          `json:"calories"`
	TotalFat      *float64          `json:"total_fat"`
	Protein       *float64          `json:"protein"`
	Carbohydrates *float64          `json:"carbohydrates"`
	Cholesterol   *float64          `json:"cholesterol"`
	Status        string            `json:"status"`
	AuthorID      uuid.UUID         `json:"author_id"`
	CategoryIDs   []uuid.UUID       `json:"category_ids"`
	Ingredients   []IngredientInput `json:"ingredients"`
}

// UserSummary is the author projection embedded in content responses.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	PhotoURL  string    `json:"photo_url"`
}

// CategorySummary is the category projection embedded in recipe responses.
type CategorySummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url"`
}

// IngredientView is one resolved ingredient line carrying the canonical
// product name from the catalog.
type IngredientView struct {
	RecipeID    uuid.UUID `json:"recipe_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
}

// RecipeResponse is the fully resolved aggregate returned by every recipe
// read and mutation.
type RecipeResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Text          string            `json:"text"`
	PhotoURL      string            `json:"photo_url"`
	CookingTime   *int              `json:"cooking_time"`
	PrepTime      *int              `json:"prep_time"`
	CookTime      *int              `json:"cook_time"`
	Calories      *float64          `json:"calories"`
	TotalFat      *float64          `json:"total_fat"`
	Protein       *float64          `json:"protein"`
	Carbohydrates *float64          `json:"carbohydrates"`
	Cholesterol   *float64          `json:"cholesterol"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Author        UserSummary       `json:"author"`
	Categories    []CategorySummary `json:"categories"`
	Ingredients   []IngredientView  `json:"ingredients"`
}

// NewUserSummary projects a user model onto its response shape.
func NewUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		PhotoURL:  u.PhotoURL,
	}
}

// NewCategorySummary projects a category model onto its response shape.
func NewCategorySummary(c models.Category) CategorySummary {
	return CategorySummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PhotoURL:    c.PhotoURL,
	}
}

// NewRecipeResponse projects a fully loaded aggregate onto the response
// shape. The recipe must have author, categories and ingredients (with
// products) resolved; the store guarantees that for everything it returns.
func NewRecipeResponse(r models.Recipe) RecipeResponse {
	categories := make([]CategorySummary, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, NewCategorySummary(c))
	}

	ingredients := make([]IngredientView, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		ingredients = append(ingredients, IngredientView{
			RecipeID:    line.RecipeID,
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
		})
	}

	return RecipeResponse{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Text:          r.Text,
		PhotoURL:      r.PhotoURL,
		CookingTime:   r.CookingTime,
		PrepTime:      r.PrepTime,
		CookTime:      r.CookTime,
		Calories:      r.Calories,
		TotalFat:      r.TotalFat,
		Protein:       r.Protein,
		Carbohydrates: r.Carbohydrates,
		Cholesterol:   r.Cholesterol,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Author:        NewUserSummary(r.User),
		Categories:    categories,
		Ingredients:   ingredients,
	}
}
