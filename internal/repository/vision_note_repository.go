package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-journal/internal/model"
)

// VisionNoteRepository stores manifest board notes.
type VisionNoteRepository struct {
	db *gorm.DB
}

func NewVisionNoteRepository(db *gorm.DB) *VisionNoteRepository {
	return &VisionNoteRepository{db: db}
}

func (r *VisionNoteRepository) Create(ctx context.Context, note *model.VisionNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create vision note: %w", err)
	}
	return nil
}

func (r *VisionNoteRepository) ListAll(ctx context.Context) ([]model.VisionNote, error) {
	var notes []model.VisionNote
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *VisionNoteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.VisionNote{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete vision note: %w", res.Error)
	}
	return res.RowsAffected, nil
}
