package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a deduplicated catalog entry shared by every recipe that
// references the same ingredient name. Name uniqueness is case-insensitive
// and enforced by an expression index created in database.Migrate; the
// application-level find-or-create in the catalog service is only a fast
// path on top of that constraint.
type Product struct {
	ID   uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name string    `gorm:"size:100;not null" json:"name"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
