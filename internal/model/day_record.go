package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayRecord is the container for everything logged on one calendar day.
// DayKey is unique; Date holds the start of that day in the store's zone.
type DayRecord struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Date      time.Time `gorm:"not null;index"`
	DayKey    string    `gorm:"size:10;not null;uniqueIndex"`
	CreatedAt time.Time

	Items   []LoggedItem   `gorm:"foreignKey:DayRecordID"`
	Journal *CareerJournal `gorm:"foreignKey:DayRecordID"`
}

func (r *DayRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
