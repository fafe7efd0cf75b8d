package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the aggregate root: it owns its ingredient lines and the
// recipe_categories associations. Mutations always go through the recipe
// service so the whole aggregate stays consistent.
type Recipe struct {
	ID            uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Title         string        `gorm:"size:100;not null" json:"title"`
	Description   string        `gorm:"size:500" json:"description"`
	Text          string        `gorm:"type:text;not null" json:"text"`
	PhotoURL      string        `gorm:"size:255" json:"photo_url"`
	CookingTime   *int          `json:"cooking_time"` // legacy single field, kept for older clients
	PrepTime      *int          `json:"prep_time"`
	CookTime      *int          `json:"cook_time"`
	Calories      *float64      `json:"calories"`
	TotalFat      *float64      `json:"total_fat"`
	Protein       *float64      `json:"protein"`
	Carbohydrates *float64      `json:"carbohydrates"`
	Cholesterol   *float64      `json:"cholesterol"`
	Status        ContentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	UserID        uuid.UUID     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User          User          `json:"-"`
	Categories    []Category    `gorm:"many2many:recipe_categories" json:"categories"`
	Ingredients   []Ingredient  `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}
