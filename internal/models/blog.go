package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID          uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Title       string        `gorm:"size:100;not null" json:"title"`
	Description string        `gorm:"size:100" json:"description"`
	Text        string        `gorm:"type:text;not null" json:"text"`
	PhotoURL    string        `gorm:"size:255" json:"photo_url"`
	CookingTime *int          `json:"cooking_time"`
	Status      ContentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	UserID      uuid.UUID     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User        User          `json:"-"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
