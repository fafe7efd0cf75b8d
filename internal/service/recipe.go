package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/store"
	"github.com/culinarybook/backend/internal/types"
)

const (
	publishedRecipesCacheKey = "cache:recipes:published"
	publishedRecipesCacheTTL = time.Minute
)

// RecipeService orchestrates authorization, validation, category
// resolution, ingredient reconciliation and persistence for the recipe
// aggregate. Every mutation runs inside one all-or-nothing transaction;
// any failure leaves no partial aggregate visible.
type RecipeService struct {
	db         *gorm.DB
	store      *store.RecipeStore
	reconciler *IngredientReconciler
	cache      *redis.Client // optional; nil disables the published-list cache
	log        *zap.SugaredLogger
}

func NewRecipeService(db *gorm.DB, cache *redis.Client, log *zap.SugaredLogger) *RecipeService {
	return &RecipeService{
		db:         db,
		store:      store.NewRecipeStore(db),
		reconciler: NewIngredientReconciler(NewProductCatalog(log)),
		cache:      cache,
		log:        log,
	}
}

// FindAll returns every recipe with the given status, or all recipes when
// status is nil. The published listing is the public read path and is
// served from cache when redis is configured.
func (s *RecipeService) FindAll(ctx context.Context, status *models.ContentStatus) ([]types.RecipeResponse, error) {
	cacheable := status != nil && *status == models.StatusPublished && s.cache != nil
	if cacheable {
		if data, err := s.cache.Get(ctx, publishedRecipesCacheKey).Bytes(); err == nil {
			var cached []types.RecipeResponse
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	recipes, err := s.store.FindAllByStatus(status)
	if err != nil {
		return nil, err
	}

	out := make([]types.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, types.NewRecipeResponse(r))
	}

	if cacheable {
		if data, err := json.Marshal(out); err == nil {
			s.cache.Set(ctx, publishedRecipesCacheKey, data, publishedRecipesCacheTTL)
		}
	}
	return out, nil
}

// FindByID returns the fully resolved aggregate.
func (s *RecipeService) FindByID(ctx context.Context, id uuid.UUID) (*types.RecipeResponse, error) {
	recipe, err := store.NewRecipeStore(s.db.WithContext(ctx)).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, id)
		}
		return nil, err
	}
	resp := types.NewRecipeResponse(*recipe)
	return &resp, nil
}

// Create persists a new recipe aggregate. Ordering inside the transaction
// matters: the recipe shell is saved first to obtain its id, then the
// ingredient lines are reconciled and written against that id.
func (s *RecipeService) Create(ctx context.Context, req types.RecipeRequest) (*types.RecipeResponse, error) {
	var created models.Recipe

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		author, err := s.resolveAuthor(tx, req.AuthorID)
		if err != nil {
			return err
		}
		if !author.Role.CanCreateContent() {
			return fmt.Errorf("%w: only AUTHOR, ADMIN or MODERATOR users can create recipes", ErrForbidden)
		}

		categories, err := s.resolveCategories(tx, req.CategoryIDs)
		if err != nil {
			return err
		}
		if err := validateRecipeRequest(req); err != nil {
			return err
		}

		recipe := models.Recipe{UserID: author.ID, User: *author, Categories: categories}
		applyRecipeRequest(&recipe, req)

		st := s.store.WithTx(tx)
		if err := st.Save(&recipe); err != nil {
			return err
		}

		lines, err := s.reconciler.Reconcile(tx, recipe.ID, req.Ingredients)
		if err != nil {
			return err
		}
		if err := st.ReplaceIngredients(recipe.ID, lines); err != nil {
			return err
		}

		loaded, err := st.FindByID(recipe.ID)
		if err != nil {
			return err
		}
		created = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	if s.log != nil {
		s.log.Infow("recipe created", "recipe_id", created.ID, "title", created.Title, "ingredients", len(created.Ingredients))
	}
	resp := types.NewRecipeResponse(created)
	return &resp, nil
}

// Update replaces the stored aggregate with the request. All mutable
// fields are overwritten (omitted optional fields clear stored values) and
// the ingredient set is fully replaced, never merged.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req types.RecipeRequest) (*types.RecipeResponse, error) {
	var updated models.Recipe

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := s.store.WithTx(tx)

		recipe, err := st.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: recipe %s", ErrNotFound, id)
			}
			return err
		}

		author, err := s.resolveAuthor(tx, req.AuthorID)
		if err != nil {
			return err
		}
		if !author.Role.CanCreateContent() {
			return fmt.Errorf("%w: only AUTHOR, ADMIN or MODERATOR users can update recipes", ErrForbidden)
		}

		categories, err := s.resolveCategories(tx, req.CategoryIDs)
		if err != nil {
			return err
		}
		if err := validateRecipeRequest(req); err != nil {
			return err
		}

		recipe.UserID = author.ID
		recipe.User = *author
		recipe.Categories = categories
		applyRecipeRequest(recipe, req)

		if err := st.Save(recipe); err != nil {
			return err
		}

		lines, err := s.reconciler.Reconcile(tx, recipe.ID, req.Ingredients)
		if err != nil {
			return err
		}
		if err := st.ReplaceIngredients(recipe.ID, lines); err != nil {
			return err
		}

		loaded, err := st.FindByID(recipe.ID)
		if err != nil {
			return err
		}
		updated = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	resp := types.NewRecipeResponse(updated)
	return &resp, nil
}

// Delete removes the aggregate. Deleting an absent id is not an error at
// this layer.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.store.WithTx(tx).DeleteByID(id)
	})
	if err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *RecipeService) resolveAuthor(tx *gorm.DB, id uuid.UUID) (*models.User, error) {
	var author models.User
	if err := tx.First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: author %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &author, nil
}

func (s *RecipeService) resolveCategories(tx *gorm.DB, ids []uuid.UUID) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: category %s", ErrNotFound, id)
			}
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *RecipeService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, publishedRecipesCacheKey)
}

func validateRecipeRequest(req types.RecipeRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: recipe title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: recipe text is required", ErrValidation)
	}
	return nil
}

// applyRecipeRequest overwrites every mutable field with the request
// value. An empty status keeps the stored one; everything else, including
// nil timing and nutrition fields, is assigned as-is.
func applyRecipeRequest(recipe *models.Recipe, req types.RecipeRequest) {
	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Text = req.Text
	recipe.PhotoURL = req.PhotoURL
	recipe.CookingTime = req.CookingTime
	recipe.PrepTime = req.PrepTime
	recipe.CookTime = req.CookTime
	recipe.Calories = req.Calories
	recipe.TotalFat = req.TotalFat
	recipe.Protein = req.Protein
	recipe.Carbohydrates = req.Carbohydrates
	recipe.Cholesterol = req.Cholesterol
	if req.Status != "" {
		recipe.Status = models.ParseContentStatus(req.Status)
	} else if recipe.Status == "" {
		recipe.Status = models.StatusPending
	}
}
