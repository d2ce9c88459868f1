package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisionNoteStyles is the number of paper styles a manifest note can use.
const VisionNoteStyles = 6

// VisionNote is a note pinned to the manifest board. Position is a percentage
// of the board, rotation is in degrees.
type VisionNote struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Text      string    `gorm:"not null"`
	Style     int       `gorm:"not null;default:0"`
	PosX      float64
	PosY      float64
	Rotation  float64
	CreatedAt time.Time
}

func (n *VisionNote) BeforeCreate(*gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
