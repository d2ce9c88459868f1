package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"daily-journal/internal/calendar"
	"daily-journal/internal/model"
)

// openTestDB creates a migrated SQLite database in a temp dir.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestNewDB_Memory(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range []string{"day_records", "logged_items", "career_journals", "tags", "vision_notes"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewDB_CreatesParentDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	db, err := NewDB("file:" + filepath.Join(dir, "journal.db") + "?_busy_timeout=5000")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDayRecordRepository_GetOrCreate(t *testing.T) {
	repo := NewDayRecordRepository(openTestDB(t))
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	first, created, err := repo.GetOrCreate(ctx, day, now)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, day, now)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindByKey(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByKey(ctx, "2024-06-02")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDayRecordRepository_GetOrCreateLosesInsertRace(t *testing.T) {
	db := openTestDB(t)
	repo := NewDayRecordRepository(db)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))

	// Another writer inserts the day between the lookup and the insert.
	winner := model.DayRecord{Date: day.Start, DayKey: day.Key}
	inserted := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:concurrent_day_insert", func(tx *gorm.DB) {
		if inserted || tx.Statement.Table != "day_records" {
			return
		}
		inserted = true
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).Create(&winner).Error)
	}))

	got, created, err := repo.GetOrCreate(ctx, day, time.Now())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner.ID, got.ID)

	var count int64
	require.NoError(t, db.Model(&model.DayRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDayRecordRepository_UniqueDayKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, db.WithContext(ctx).Create(&model.DayRecord{Date: day.Start, DayKey: day.Key}).Error)
	err := db.WithContext(ctx).Create(&model.DayRecord{Date: day.Start, DayKey: day.Key}).Error
	assert.Error(t, err, "a second record for the same day must be rejected")
}

func TestLoggedItemRepository_ClearTag(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	record, _, err := NewDayRecordRepository(db).GetOrCreate(ctx, day, time.Now())
	require.NoError(t, err)

	repo := NewLoggedItemRepository(db)
	vogue, elle := "Vogue", "Elle"
	items := []*model.LoggedItem{
		{DayRecordID: record.ID, Kind: model.ItemKindURL, Title: "a", SourceTag: &vogue},
		{DayRecordID: record.ID, Kind: model.ItemKindURL, Title: "b", SourceTag: &vogue},
		{DayRecordID: record.ID, Kind: model.ItemKindURL, Title: "c", SourceTag: &elle},
	}
	for _, item := range items {
		require.NoError(t, repo.Create(ctx, item))
	}

	n, err := repo.ClearTag(ctx, model.TagKindSource, "Vogue")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Nil(t, got.SourceTag)

	got, err = repo.FindByID(ctx, items[2].ID)
	require.NoError(t, err)
	require.NotNil(t, got.SourceTag)
	assert.Equal(t, "Elle", *got.SourceTag)

	n, err = repo.ClearTag(ctx, model.TagKindSource, "Vogue")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoggedItemRepository_DeleteReportsRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Now())
	record, _, err := NewDayRecordRepository(db).GetOrCreate(ctx, day, time.Now())
	require.NoError(t, err)

	repo := NewLoggedItemRepository(db)
	item := &model.LoggedItem{DayRecordID: record.ID, Kind: model.ItemKindPDF, Title: "doc"}
	require.NoError(t, repo.Create(ctx, item))

	n, err := repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCareerJournalRepository_GetOrCreate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Now())
	record, _, err := NewDayRecordRepository(db).GetOrCreate(ctx, day, time.Now())
	require.NoError(t, err)

	repo := NewCareerJournalRepository(db)
	first, err := repo.GetOrCreate(ctx, record.ID, time.Now())
	require.NoError(t, err)
	second, err := repo.GetOrCreate(ctx, record.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.ReflectionDiary, second.ReflectionKind)

	err = db.WithContext(ctx).Create(model.NewCareerJournal(record.ID, time.Now())).Error
	assert.Error(t, err, "a day has at most one journal")
}

func TestCareerJournalRepository_GetOrCreateLosesInsertRace(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	day := calendar.New(time.UTC).DayOf(time.Now())
	record, _, err := NewDayRecordRepository(db).GetOrCreate(ctx, day, time.Now())
	require.NoError(t, err)

	winner := model.NewCareerJournal(record.ID, time.Now())
	winner.ReflectionContent = "written elsewhere"
	inserted := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:concurrent_journal_insert", func(tx *gorm.DB) {
		if inserted || tx.Statement.Table != "career_journals" {
			return
		}
		inserted = true
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).Create(winner).Error)
	}))

	got, err := NewCareerJournalRepository(db).GetOrCreate(ctx, record.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
	assert.Equal(t, "written elsewhere", got.ReflectionContent)
}
