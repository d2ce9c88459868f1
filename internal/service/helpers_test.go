package service

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"daily-journal/internal/calendar"
	"daily-journal/internal/repository"
)

// openTestDB creates a migrated SQLite database in a temp dir.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// stepClock advances by one second on every call so createdAt values are
// strictly increasing.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{t: start}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestDayStore(t *testing.T, db *gorm.DB, loc *time.Location) *DayRecordStore {
	t.Helper()
	store := NewDayRecordStore(
		repository.NewDayRecordRepository(db),
		repository.NewLoggedItemRepository(db),
		repository.NewCareerJournalRepository(db),
		calendar.New(loc),
		nil,
	)
	store.now = newStepClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)).Now
	return store
}

func june1(hour, minute int) time.Time {
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}
