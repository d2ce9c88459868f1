package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-journal/internal/calendar"
	"daily-journal/internal/model"
)

// DayRecordRepository stores per-day containers.
type DayRecordRepository struct {
	db *gorm.DB
}

func NewDayRecordRepository(db *gorm.DB) *DayRecordRepository {
	return &DayRecordRepository{db: db}
}

// GetOrCreate returns the record for day, creating it when missing.
// The bool result is true when a new record was inserted. Losing an insert
// race to another writer returns the winner's record.
func (r *DayRecordRepository) GetOrCreate(ctx context.Context, day calendar.Day, now time.Time) (*model.DayRecord, bool, error) {
	var record model.DayRecord
	db := r.db.WithContext(ctx)
	err := db.Where("day_key = ?", day.Key).First(&record).Error
	switch {
	case err == nil:
		return &record, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = model.DayRecord{Date: day.Start, DayKey: day.Key, CreatedAt: now}
		if err := db.Create(&record).Error; err != nil {
			// Another process may have inserted the day first.
			if existing, findErr := r.FindByKey(ctx, day.Key); findErr == nil {
				return existing, false, nil
			}
			return nil, false, fmt.Errorf("create day record: %w", err)
		}
		return &record, true, nil
	default:
		return nil, false, fmt.Errorf("find day record: %w", err)
	}
}

func (r *DayRecordRepository) FindByKey(ctx context.Context, key string) (*model.DayRecord, error) {
	var record model.DayRecord
	if err := r.db.WithContext(ctx).Where("day_key = ?", key).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindWithChildren loads the record with its items (newest first) and journal.
func (r *DayRecordRepository) FindWithChildren(ctx context.Context, id uuid.UUID) (*model.DayRecord, error) {
	var record model.DayRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }).
		Preload("Journal").
		Where("id = ?", id.String()).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBetween returns records whose day key falls in [fromKey, toKey], newest first.
func (r *DayRecordRepository) ListBetween(ctx context.Context, fromKey, toKey string) ([]model.DayRecord, error) {
	var records []model.DayRecord
	if err := r.db.WithContext(ctx).
		Where("day_key >= ? AND day_key <= ?", fromKey, toKey).
		Order("day_key DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DayRecordRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.DayRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
