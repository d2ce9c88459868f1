package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-journal/internal/model"
)

// CareerJournalRepository manages the one-per-day career journal.
type CareerJournalRepository struct {
	db *gorm.DB
}

func NewCareerJournalRepository(db *gorm.DB) *CareerJournalRepository {
	return &CareerJournalRepository{db: db}
}

func (r *CareerJournalRepository) FindByDay(ctx context.Context, dayRecordID uuid.UUID) (*model.CareerJournal, error) {
	var journal model.CareerJournal
	if err := r.db.WithContext(ctx).Where("day_record_id = ?", dayRecordID.String()).First(&journal).Error; err != nil {
		return nil, err
	}
	return &journal, nil
}

// GetOrCreate returns the journal of a day record, attaching a default one if
// absent. A journal inserted concurrently by another writer is returned as is.
func (r *CareerJournalRepository) GetOrCreate(ctx context.Context, dayRecordID uuid.UUID, now time.Time) (*model.CareerJournal, error) {
	journal, err := r.FindByDay(ctx, dayRecordID)
	switch {
	case err == nil:
		return journal, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		journal = model.NewCareerJournal(dayRecordID, now)
		if err := r.db.WithContext(ctx).Create(journal).Error; err != nil {
			if existing, findErr := r.FindByDay(ctx, dayRecordID); findErr == nil {
				return existing, nil
			}
			return nil, fmt.Errorf("create career journal: %w", err)
		}
		return journal, nil
	default:
		return nil, fmt.Errorf("find career journal: %w", err)
	}
}

// Update writes the given columns of a journal.
func (r *CareerJournalRepository) Update(ctx context.Context, journal *model.CareerJournal, columns map[string]any) error {
	if err := r.db.WithContext(ctx).Model(journal).Updates(columns).Error; err != nil {
		return fmt.Errorf("update career journal: %w", err)
	}
	return nil
}
