package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoggedItem is one piece of content saved during a day.
// Tag fields hold free text matched against Tag.Name; there is no foreign key.
type LoggedItem struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	DayRecordID uuid.UUID `gorm:"type:char(36);not null;index"`
	Kind        ItemKind  `gorm:"size:16;not null"`
	SourceURL   *string
	RawContent  []byte `gorm:"column:raw_content_bytes"`
	Title       string `gorm:"not null"`
	Description *string
	Thumbnail   []byte  `gorm:"column:thumbnail_bytes"`
	SourceTag   *string `gorm:"index"`
	AuthorTag   *string `gorm:"index"`
	CategoryTag *string `gorm:"index"`
	CreatedAt   time.Time
}

func (i *LoggedItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TagValue returns the item's tag of the given kind, or nil when unset.
func (i *LoggedItem) TagValue(kind TagKind) *string {
	switch kind {
	case TagKindSource:
		return i.SourceTag
	case TagKindAuthor:
		return i.AuthorTag
	case TagKindCategory:
		return i.CategoryTag
	}
	return nil
}

// SetTagValue sets the tag of the given kind; nil clears it.
func (i *LoggedItem) SetTagValue(kind TagKind, value *string) {
	switch kind {
	case TagKindSource:
		i.SourceTag = value
	case TagKindAuthor:
		i.AuthorTag = value
	case TagKindCategory:
		i.CategoryTag = value
	}
}
