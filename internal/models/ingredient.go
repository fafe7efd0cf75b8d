package models

import "github.com/google/uuid"

// IngredientKey is the composite identity of an ingredient line. It is a
// plain value type so it can be used directly as a map key when a
// replacement set is being assembled; two keys are equal iff both halves
// are equal.
type IngredientKey struct {
	RecipeID  uuid.UUID
	ProductID uuid.UUID
}

// Ingredient links a recipe to a catalog product with an amount. The
// composite primary key guarantees at most one line per (recipe, product)
// pair. Lines are owned by their recipe and are replaced wholesale on
// update, never patched.
type Ingredient struct {
	RecipeID  uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"recipe_id"`
	ProductID uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"product_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"size:20;not null;default:'g'" json:"unit"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
}

func (i Ingredient) Key() IngredientKey {
	return IngredientKey{RecipeID: i.RecipeID, ProductID: i.ProductID}
}
