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

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

func (s *RatingService) FindAll(ctx context.Context, recipeID *uuid.UUID) ([]models.Rating, error) {
	query := s.db.WithContext(ctx)
	if recipeID != nil {
		query = query.Where("recipe_id = ?", *recipeID)
	}
	var ratings []models.Rating
	if err := query.Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) FindByID(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := s.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) Create(ctx context.Context, req types.RatingRequest) (*models.Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	var rating models.Rating
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.User{}, req.UserID, "user"); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Recipe{}, req.RecipeID, "recipe"); err != nil {
			return err
		}
		rating = models.Rating{
			Rating:   req.Rating,
			UserID:   req.UserID,
			RecipeID: req.RecipeID,
		}
		return tx.Create(&rating).Error
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) Update(ctx context.Context, id uuid.UUID, req types.RatingRequest) (*models.Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	rating, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rating.Rating = req.Rating
	if err := s.db.WithContext(ctx).Save(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id).Error
}
