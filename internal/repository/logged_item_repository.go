package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-journal/internal/model"
)

// LoggedItemRepository handles CRUD for logged items.
type LoggedItemRepository struct {
	db *gorm.DB
}

func NewLoggedItemRepository(db *gorm.DB) *LoggedItemRepository {
	return &LoggedItemRepository{db: db}
}

func (r *LoggedItemRepository) Create(ctx context.Context, item *model.LoggedItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create logged item: %w", err)
	}
	return nil
}

func (r *LoggedItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LoggedItem, error) {
	var item model.LoggedItem
	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LoggedItemRepository) ListByDay(ctx context.Context, dayRecordID uuid.UUID) ([]model.LoggedItem, error) {
	var items []model.LoggedItem
	if err := r.db.WithContext(ctx).Where("day_record_id = ?", dayRecordID.String()).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SetTag writes one tag column. A nil value stores NULL.
func (r *LoggedItemRepository) SetTag(ctx context.Context, id uuid.UUID, kind model.TagKind, value *string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.LoggedItem{}).
		Where("id = ?", id.String()).
		Update(kind.Column(), value)
	if res.Error != nil {
		return 0, fmt.Errorf("update %s: %w", kind.Column(), res.Error)
	}
	return res.RowsAffected, nil
}

// ClearTag unsets the tag column of every item whose value equals name exactly.
func (r *LoggedItemRepository) ClearTag(ctx context.Context, kind model.TagKind, name string) (int64, error) {
	column := kind.Column()
	res := r.db.WithContext(ctx).Model(&model.LoggedItem{}).
		Where(column+" = ?", name).
		Update(column, gorm.Expr("NULL"))
	if res.Error != nil {
		return 0, fmt.Errorf("clear %s: %w", column, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes an item and reports how many rows were deleted.
func (r *LoggedItemRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&model.LoggedItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete logged item: %w", res.Error)
	}
	return res.RowsAffected, nil
}
