package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareerJournal is the structured journal of one day.
// ReflectionContent keeps the empty-string-means-unset convention.
type CareerJournal struct {
	ID                uuid.UUID     `gorm:"type:char(36);primaryKey"`
	DayRecordID       uuid.UUID     `gorm:"type:char(36);not null;uniqueIndex"`
	PriorityTasks     PriorityTasks `gorm:"column:priority_tasks_json;type:text;not null"`
	MorningActivity   *string
	AfternoonActivity *string
	EveningActivity   *string
	ReflectionKind    ReflectionKind `gorm:"size:16;not null;default:diary"`
	ReflectionContent string
	CreatedAt         time.Time
}

// NewCareerJournal returns a journal with default values for the given day record.
func NewCareerJournal(dayRecordID uuid.UUID, now time.Time) *CareerJournal {
	return &CareerJournal{
		DayRecordID:    dayRecordID,
		ReflectionKind: ReflectionDiary,
		CreatedAt:      now,
	}
}

func (j *CareerJournal) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Activity returns the text of the given time block.
func (j *CareerJournal) Activity(slot ActivitySlot) *string {
	switch slot {
	case SlotMorning:
		return j.MorningActivity
	case SlotAfternoon:
		return j.AfternoonActivity
	case SlotEvening:
		return j.EveningActivity
	}
	return nil
}
