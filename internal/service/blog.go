package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/types"
)

// BlogService provides CRUD for blog posts with the same moderation
// lifecycle as recipes, minus the aggregate parts.
type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) FindAll(ctx context.Context, status *models.ContentStatus) ([]models.Blog, error) {
	query := s.db.WithContext(ctx).Preload("User")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var blogs []models.Blog
	if err := query.Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *BlogService) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.WithContext(ctx).Preload("User").First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Create(ctx context.Context, req types.BlogRequest) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author models.User
		if err := tx.First(&author, "id = ?", req.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: author %s", ErrNotFound, req.AuthorID)
			}
			return err
		}
		if !author.Role.CanCreateContent() {
			return fmt.Errorf("%w: only AUTHOR, ADMIN or MODERATOR users can create blogs", ErrForbidden)
		}
		if err := validateBlogRequest(req); err != nil {
			return err
		}

		blog = models.Blog{
			Title:       req.Title,
			Description: req.Description,
			Text:        req.Text,
			PhotoURL:    req.PhotoURL,
			CookingTime: req.CookingTime,
			Status:      models.ParseContentStatus(req.Status),
			UserID:      author.ID,
			User:        author,
		}
		return tx.Omit("User").Create(&blog).Error
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req types.BlogRequest) (*models.Blog, error) {
	var updated models.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blog models.Blog
		if err := tx.Preload("User").First(&blog, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: blog %s", ErrNotFound, id)
			}
			return err
		}

		var author models.User
		if err := tx.First(&author, "id = ?", req.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: author %s", ErrNotFound, req.AuthorID)
			}
			return err
		}
		if err := validateBlogRequest(req); err != nil {
			return err
		}

		blog.Title = req.Title
		blog.Description = req.Description
		blog.Text = req.Text
		blog.PhotoURL = req.PhotoURL
		blog.CookingTime = req.CookingTime
		if req.Status != "" {
			blog.Status = models.ParseContentStatus(req.Status)
		}
		blog.UserID = author.ID
		blog.User = author

		if err := tx.Omit("User").Save(&blog).Error; err != nil {
			return err
		}
		updated = blog
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id).Error
}

func validateBlogRequest(req types.BlogRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: blog title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: blog text is required", ErrValidation)
	}
	return nil
}
