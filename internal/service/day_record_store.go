package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"daily-journal/internal/apperr"
	"daily-journal/internal/calendar"
	"daily-journal/internal/ingest"
	"daily-journal/internal/model"
	"daily-journal/internal/repository"
)

// DayRecordStore is the single entry point for day-scoped entities: the day
// record itself, its logged items and its career journal.
type DayRecordStore struct {
	days     *repository.DayRecordRepository
	items    *repository.LoggedItemRepository
	journals *repository.CareerJournalRepository
	cal      *calendar.Calendar
	logger   *slog.Logger
	now      func() time.Time

	// mu serialises get-or-create so a day is never inserted twice.
	mu sync.Mutex
}

func NewDayRecordStore(
	days *repository.DayRecordRepository,
	items *repository.LoggedItemRepository,
	journals *repository.CareerJournalRepository,
	cal *calendar.Calendar,
	logger *slog.Logger,
) *DayRecordStore {
	return &DayRecordStore{
		days:     days,
		items:    items,
		journals: journals,
		cal:      cal,
		logger:   componentLogger(logger, "day_record_store"),
		now:      time.Now,
	}
}

// Calendar returns the calendar used to resolve days.
func (s *DayRecordStore) Calendar() *calendar.Calendar {
	return s.cal
}

// GetOrCreateDayRecord returns the record of the calendar day containing date.
func (s *DayRecordStore) GetOrCreateDayRecord(ctx context.Context, date time.Time) (*model.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dayRecord(ctx, date)
}

// dayRecord must be called with mu held.
func (s *DayRecordStore) dayRecord(ctx context.Context, date time.Time) (*model.DayRecord, error) {
	day := s.cal.DayOf(date)
	record, created, err := s.days.GetOrCreate(ctx, day, s.now().UTC())
	if err != nil {
		return nil, apperr.Persistence("get or create day record", err)
	}
	if created {
		s.logger.Debug("day record created", "day", day.Key, "id", record.ID)
	}
	return record, nil
}

// DayWithChildren returns the day's record with its items and journal loaded.
// Journal is nil until the day's journal is first touched.
func (s *DayRecordStore) DayWithChildren(ctx context.Context, date time.Time) (*model.DayRecord, error) {
	record, err := s.GetOrCreateDayRecord(ctx, date)
	if err != nil {
		return nil, err
	}
	full, err := s.days.FindWithChildren(ctx, record.ID)
	if err != nil {
		return nil, lookupErr("day record", record.ID.String(), "load day record", err)
	}
	return full, nil
}

// ListDays returns the existing records between two dates inclusive, newest first.
// It never creates records.
func (s *DayRecordStore) ListDays(ctx context.Context, from, to time.Time) ([]model.DayRecord, error) {
	fromKey, toKey := s.cal.DayOf(from).Key, s.cal.DayOf(to).Key
	if fromKey > toKey {
		return nil, apperr.Validation("date range", fmt.Sprintf("%s is after %s", fromKey, toKey))
	}
	records, err := s.days.ListBetween(ctx, fromKey, toKey)
	if err != nil {
		return nil, apperr.Persistence("list day records", err)
	}
	return records, nil
}

// ListLoggedItems returns the day's items, most recent first.
func (s *DayRecordStore) ListLoggedItems(ctx context.Context, date time.Time) ([]model.LoggedItem, error) {
	record, err := s.GetOrCreateDayRecord(ctx, date)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByDay(ctx, record.ID)
	if err != nil {
		return nil, apperr.Persistence("list logged items", err)
	}
	if items == nil {
		items = []model.LoggedItem{}
	}
	return items, nil
}

// AddLoggedItem attaches ingested content to the day containing date.
func (s *DayRecordStore) AddLoggedItem(ctx context.Context, date time.Time, content ingest.ParsedContent) (*model.LoggedItem, error) {
	title := strings.TrimSpace(content.Title)
	if title == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}
	if !content.Kind.Valid() {
		return nil, apperr.Validation("kind", fmt.Sprintf("unknown item kind %q", content.Kind))
	}

	record, err := s.GetOrCreateDayRecord(ctx, date)
	if err != nil {
		return nil, err
	}

	item := &model.LoggedItem{
		DayRecordID: record.ID,
		Kind:        content.Kind,
		SourceURL:   optional(content.SourceURL),
		RawContent:  content.RawBytes,
		Title:       title,
		Description: optional(content.Description),
		Thumbnail:   content.Thumbnail,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apperr.Persistence("add logged item", err)
	}
	s.logger.Debug("logged item added", "day", record.DayKey, "id", item.ID, "kind", item.Kind)
	return item, nil
}

func (s *DayRecordStore) GetLoggedItem(ctx context.Context, id uuid.UUID) (*model.LoggedItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("logged item", id.String(), "find logged item", err)
	}
	return item, nil
}

// UpdateLoggedItemTag sets one tag field of an item. The value is trimmed and
// an empty value clears the field.
func (s *DayRecordStore) UpdateLoggedItemTag(ctx context.Context, id uuid.UUID, kind model.TagKind, value string) error {
	if !kind.Valid() {
		return apperr.Validation("tag kind", fmt.Sprintf("unknown tag kind %q", kind))
	}
	n, err := s.items.SetTag(ctx, id, kind, optional(strings.TrimSpace(value)))
	if err != nil {
		return apperr.Persistence("update logged item tag", err)
	}
	if n == 0 {
		return apperr.NotFound("logged item", id.String())
	}
	return nil
}

// DeleteLoggedItem removes an item. Deleting a missing item, including a
// second delete of the same item, reports NotFoundError.
func (s *DayRecordStore) DeleteLoggedItem(ctx context.Context, id uuid.UUID) error {
	n, err := s.items.Delete(ctx, id)
	if err != nil {
		return apperr.Persistence("delete logged item", err)
	}
	if n == 0 {
		return apperr.NotFound("logged item", id.String())
	}
	s.logger.Debug("logged item deleted", "id", id)
	return nil
}

// GetOrCreateCareerJournal returns the day's journal, creating a default one
// on first access.
func (s *DayRecordStore) GetOrCreateCareerJournal(ctx context.Context, date time.Time) (*model.CareerJournal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.dayRecord(ctx, date)
	if err != nil {
		return nil, err
	}
	journal, err := s.journals.GetOrCreate(ctx, record.ID, s.now().UTC())
	if err != nil {
		return nil, apperr.Persistence("get or create career journal", err)
	}
	return journal, nil
}

// UpdatePriorityTasks replaces the three priority tasks. Inputs that are not
// exactly three entries long are rejected, never padded.
func (s *DayRecordStore) UpdatePriorityTasks(ctx context.Context, date time.Time, tasks []string) (*model.CareerJournal, error) {
	slots, err := model.PriorityTasksFromSlice(tasks)
	if err != nil {
		return nil, apperr.Validation("priority tasks", fmt.Sprintf("want 3 entries, got %d", len(tasks)))
	}
	journal, err := s.GetOrCreateCareerJournal(ctx, date)
	if err != nil {
		return nil, err
	}
	journal.PriorityTasks = slots
	if err := s.saveJournal(ctx, journal, map[string]any{"priority_tasks_json": slots}); err != nil {
		return nil, err
	}
	return journal, nil
}

// UpdateActivity sets the text of one time block. Blank text clears it.
func (s *DayRecordStore) UpdateActivity(ctx context.Context, date time.Time, slot model.ActivitySlot, text string) (*model.CareerJournal, error) {
	if !slot.Valid() {
		return nil, apperr.Validation("activity slot", fmt.Sprintf("unknown slot %q", slot))
	}
	journal, err := s.GetOrCreateCareerJournal(ctx, date)
	if err != nil {
		return nil, err
	}

	value := optional(strings.TrimSpace(text))
	switch slot {
	case model.SlotMorning:
		journal.MorningActivity = value
	case model.SlotAfternoon:
		journal.AfternoonActivity = value
	case model.SlotEvening:
		journal.EveningActivity = value
	}
	if err := s.saveJournal(ctx, journal, map[string]any{slot.Column(): value}); err != nil {
		return nil, err
	}
	return journal, nil
}

// UpdateReflection sets the reflection kind and content. Content is stored as
// given; an empty string means no reflection has been written.
func (s *DayRecordStore) UpdateReflection(ctx context.Context, date time.Time, kind model.ReflectionKind, content string) (*model.CareerJournal, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("reflection kind", fmt.Sprintf("unknown reflection kind %q", kind))
	}
	journal, err := s.GetOrCreateCareerJournal(ctx, date)
	if err != nil {
		return nil, err
	}
	journal.ReflectionKind = kind
	journal.ReflectionContent = content
	if err := s.saveJournal(ctx, journal, map[string]any{
		"reflection_kind":    kind,
		"reflection_content": content,
	}); err != nil {
		return nil, err
	}
	return journal, nil
}

// Rollover makes sure the current day and its journal exist.
func (s *DayRecordStore) Rollover(ctx context.Context) error {
	journal, err := s.GetOrCreateCareerJournal(ctx, s.now())
	if err != nil {
		return err
	}
	s.logger.Info("day rolled over", "day", s.cal.DayOf(s.now()).Key, "journal", journal.ID)
	return nil
}

func (s *DayRecordStore) saveJournal(ctx context.Context, journal *model.CareerJournal, columns map[string]any) error {
	if err := s.journals.Update(ctx, journal, columns); err != nil {
		return apperr.Persistence("save career journal", err)
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
