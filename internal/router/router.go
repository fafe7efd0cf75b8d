package router

import (
	"github.com/gin-gonic/gin"

	"github.com/culinarybook/backend/internal/api"
	"github.com/culinarybook/backend/internal/middleware"
	"github.com/culinarybook/backend/internal/models"
)

// Handlers bundles every API handler the router mounts.
type Handlers struct {
	Health     *api.HealthHandler
	Auth       *api.AuthHandler
	Recipes    *api.RecipeHandler
	Blogs      *api.BlogHandler
	Categories *api.CategoryHandler
	Products   *api.ProductHandler
	Comments   *api.CommentHandler
	Ratings    *api.RatingHandler
	Users      *api.UserHandler
	Files      *api.FileHandler
}

// SetupRouter configures the application routes. createLimit may be nil
// when redis is not configured; the Files handler may be nil when photo
// storage is not configured.
func SetupRouter(h Handlers, validator middleware.TokenValidator, createLimit gin.HandlerFunc, corsOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(corsOrigins))

	v1 := router.Group("/api/v1")

	h.Health.RegisterRoutes(v1)
	h.Auth.RegisterRoutes(v1)

	auth := middleware.AuthMiddleware(validator)
	h.Recipes.RegisterRoutes(v1, auth, createLimit)
	h.Blogs.RegisterRoutes(v1, auth, createLimit)
	h.Categories.RegisterRoutes(v1, auth)
	h.Products.RegisterRoutes(v1, auth)
	h.Comments.RegisterRoutes(v1, auth)
	h.Ratings.RegisterRoutes(v1, auth)
	h.Users.RegisterRoutes(v1, auth, middleware.RequireRoles(models.RoleAdmin))

	if h.Files != nil {
		h.Files.RegisterRoutes(v1, auth)
	}

	return router
}
