package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Rating   int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	UserID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
