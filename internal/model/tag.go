package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a reusable user-defined label. Items reference it by Name only.
type Tag struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"not null"`
	Kind      TagKind   `gorm:"size:16;not null;index"`
	CreatedAt time.Time
}

func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
