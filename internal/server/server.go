package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/config"
	"github.com/culinarybook/backend/internal/api"
	"github.com/culinarybook/backend/internal/middleware"
	"github.com/culinarybook/backend/internal/router"
	"github.com/culinarybook/backend/internal/service"
)

// Server owns the HTTP listener and the wired application graph.
type Server struct {
	http  *http.Server
	log   *zap.SugaredLogger
	redis *redis.Client
}

// New wires services and handlers onto the router and prepares the
// HTTP server. Redis and S3 are optional; when absent the rate limiter,
// the recipe cache and the upload endpoint are simply not mounted.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, cache *redis.Client, log *zap.SugaredLogger) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, cache, log)

	handlers := router.Handlers{
		Health:     api.NewHealthHandler(db),
		Auth:       api.NewAuthHandler(authService),
		Recipes:    api.NewRecipeHandler(recipeService),
		Blogs:      api.NewBlogHandler(service.NewBlogService(db)),
		Categories: api.NewCategoryHandler(service.NewCategoryService(db)),
		Products:   api.NewProductHandler(service.NewProductService(db)),
		Comments:   api.NewCommentHandler(service.NewCommentService(db)),
		Ratings:    api.NewRatingHandler(service.NewRatingService(db)),
		Users:      api.NewUserHandler(service.NewUserService(db)),
	}

	if cfg.S3Bucket != "" {
		photos, err := service.NewPhotoService(ctx, cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
		}
		handlers.Files = api.NewFileHandler(photos)
	} else {
		log.Infow("photo storage disabled", "reason", "no S3 bucket configured")
	}

	var createLimit gin.HandlerFunc
	if cache != nil {
		createLimit = middleware.NewContentCreationRateLimiter(cache).Middleware()
	} else {
		log.Infow("content creation rate limiting disabled", "reason", "no redis configured")
	}

	engine := router.SetupRouter(handlers, authService, createLimit, cfg.CORSOrigins)

	return &Server{
		http: &http.Server{
			Addr:         cfg.ServerHost + ":" + cfg.ServerPort,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		log:   log,
		redis: cache,
	}, nil
}

// Start runs the listener until it fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Infow("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
