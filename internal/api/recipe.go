package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/types"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes wires the recipe endpoints. The public listing is open;
// everything else sits behind the auth middleware (and mutations behind
// the creation rate limit when redis is configured).
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, createLimit gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	recipes.GET("/public", h.ListPublishedRecipes)

	protected := recipes.Group("", auth)
	protected.GET("", h.ListRecipes)
	protected.GET("/:id", h.GetRecipe)

	mutating := protected.Group("")
	if createLimit != nil {
		mutating.Use(createLimit)
	}
	mutating.POST("", h.CreateRecipe)
	mutating.PUT("/:id", h.UpdateRecipe)
	mutating.DELETE("/:id", h.DeleteRecipe)
}

// ListPublishedRecipes is the public read path: PUBLISHED rows only.
func (h *RecipeHandler) ListPublishedRecipes(c *gin.Context) {
	status := models.StatusPublished
	recipes, err := h.recipes.FindAll(c.Request.Context(), &status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ListRecipes returns every recipe, optionally filtered by ?status=.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var status *models.ContentStatus
	if raw := c.Query("status"); raw != "" {
		parsed := models.ParseContentStatus(raw)
		status = &parsed
	}

	recipes, err := h.recipes.FindAll(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAuthorFromContext(c, &req.AuthorID)

	recipe, err := h.recipes.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fillAuthorFromContext(c, &req.AuthorID)

	recipe, err := h.recipes.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted", "id": id})
}

// fillAuthorFromContext defaults the author to the authenticated caller
// when the request body does not name one (the admin panel may create
// content on behalf of another author, so an explicit id wins).
func fillAuthorFromContext(c *gin.Context, authorID *uuid.UUID) {
	if *authorID != uuid.Nil {
		return
	}
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uuid.UUID); ok {
			*authorID = id
		}
	}
}
