package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/types"
)

// defaultUnit is persisted when a requested line has no unit.
const defaultUnit = "g"

// IngredientReconciler turns a caller-supplied ingredient list into the
// authoritative line set for one recipe. It never consults previously
// stored lines: the output is always a complete replacement set built from
// the input alone.
type IngredientReconciler struct {
	catalog *ProductCatalog
}

func NewIngredientReconciler(catalog *ProductCatalog) *IngredientReconciler {
	return &IngredientReconciler{catalog: catalog}
}

// Reconcile resolves every requested line against the product catalog and
// keys the result by (recipe, product). A product name appearing twice in
// the input collapses to one line, last occurrence winning. The recipe
// must already be persisted: lines cannot exist before their parent has an
// id.
func (r *IngredientReconciler) Reconcile(tx *gorm.DB, recipeID uuid.UUID, requested []types.IngredientInput) ([]models.Ingredient, error) {
	if recipeID == uuid.Nil {
		return nil, fmt.Errorf("recipe must be persisted before its ingredients")
	}

	byKey := make(map[models.IngredientKey]models.Ingredient, len(requested))
	order := make([]models.IngredientKey, 0, len(requested))

	for _, line := range requested {
		product, err := r.catalog.Resolve(tx, line.ProductName)
		if err != nil {
			return nil, err
		}

		quantity := 0.0
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		unit := strings.TrimSpace(line.Unit)
		if unit == "" {
			unit = defaultUnit
		}

		ingredient := models.Ingredient{
			RecipeID:  recipeID,
			ProductID: product.ID,
			Quantity:  quantity,
			Unit:      unit,
			Product:   *product,
		}

		key := ingredient.Key()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = ingredient
	}

	lines := make([]models.Ingredient, 0, len(order))
	for _, key := range order {
		lines = append(lines, byKey[key])
	}
	return lines, nil
}
