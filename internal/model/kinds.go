package model

import "fmt"

// ItemKind classifies a logged item by what was saved.
type ItemKind string

const (
	ItemKindURL      ItemKind = "url"
	ItemKindImage    ItemKind = "image"
	ItemKindPDF      ItemKind = "pdf"
	ItemKindDocument ItemKind = "document"
	ItemKindUnknown  ItemKind = "unknown"
)

// Valid reports whether k is one of the known item kinds.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindURL, ItemKindImage, ItemKindPDF, ItemKindDocument, ItemKindUnknown:
		return true
	}
	return false
}

// TagKind partitions the tag vocabulary. Each kind maps to one tag field on LoggedItem.
type TagKind string

const (
	TagKindSource   TagKind = "source"
	TagKindAuthor   TagKind = "author"
	TagKindCategory TagKind = "category"
)

// TagKinds lists every tag kind in display order.
var TagKinds = []TagKind{TagKindSource, TagKindAuthor, TagKindCategory}

func (k TagKind) Valid() bool {
	switch k {
	case TagKindSource, TagKindAuthor, TagKindCategory:
		return true
	}
	return false
}

// Column returns the logged_items column holding tags of this kind.
func (k TagKind) Column() string {
	switch k {
	case TagKindSource:
		return "source_tag"
	case TagKindAuthor:
		return "author_tag"
	case TagKindCategory:
		return "category_tag"
	}
	return ""
}

// ParseTagKind accepts a tag kind name, case-sensitive.
func ParseTagKind(raw string) (TagKind, error) {
	k := TagKind(raw)
	if !k.Valid() {
		return "", fmt.Errorf("unknown tag kind %q", raw)
	}
	return k, nil
}

// ReflectionKind selects the flavour of the day's reflection text.
type ReflectionKind string

const (
	ReflectionGratitude   ReflectionKind = "gratitude"
	ReflectionInspiration ReflectionKind = "inspiration"
	ReflectionDiary       ReflectionKind = "diary"
)

func (k ReflectionKind) Valid() bool {
	switch k {
	case ReflectionGratitude, ReflectionInspiration, ReflectionDiary:
		return true
	}
	return false
}

// ActivitySlot is one of the three time blocks of the career journal.
type ActivitySlot string

const (
	SlotMorning   ActivitySlot = "morning"
	SlotAfternoon ActivitySlot = "afternoon"
	SlotEvening   ActivitySlot = "evening"
)

func (s ActivitySlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// Column returns the career_journals column for the slot.
func (s ActivitySlot) Column() string {
	if !s.Valid() {
		return ""
	}
	return string(s) + "_activity"
}
