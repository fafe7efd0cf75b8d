package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/types"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) FindAll(ctx context.Context, recipeID *uuid.UUID) ([]models.Comment, error) {
	query := s.db.WithContext(ctx).Preload("User")
	if recipeID != nil {
		query = query.Where("recipe_id = ?", *recipeID)
	}
	var comments []models.Comment
	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Create(ctx context.Context, req types.CommentRequest) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.User{}, req.UserID, "user"); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Recipe{}, req.RecipeID, "recipe"); err != nil {
			return err
		}
		comment = models.Comment{
			Text:     req.Text,
			UserID:   req.UserID,
			RecipeID: req.RecipeID,
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Update(ctx context.Context, id uuid.UUID, req types.CommentRequest) (*models.Comment, error) {
	comment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Text = req.Text
	if err := s.db.WithContext(ctx).Omit("User").Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}

// requireExists checks a referenced row without loading it fully.
func requireExists(tx *gorm.DB, model interface{}, id uuid.UUID, kind string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return nil
}
