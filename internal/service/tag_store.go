package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"daily-journal/internal/apperr"
	"daily-journal/internal/model"
	"daily-journal/internal/repository"
)

// TagStore manages the reusable tag vocabulary.
//
// Items reference tags by name, not by id, so deleting a tag clears every
// item field holding that exact name. Tags cannot be renamed: a new name
// would no longer match the items tagged with the old one.
type TagStore struct {
	db     *gorm.DB
	tags   *repository.TagRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewTagStore(db *gorm.DB, logger *slog.Logger) *TagStore {
	return &TagStore{
		db:     db,
		tags:   repository.NewTagRepository(db),
		logger: componentLogger(logger, "tag_store"),
		now:    time.Now,
	}
}

// ListTags returns the tags of one kind, newest first.
func (s *TagStore) ListTags(ctx context.Context, kind model.TagKind) ([]model.Tag, error) {
	if !kind.Valid() {
		return nil, apperr.Validation("tag kind", fmt.Sprintf("unknown tag kind %q", kind))
	}
	tags, err := s.tags.ListByKind(ctx, kind)
	if err != nil {
		return nil, apperr.Persistence("list tags", err)
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	return tags, nil
}

// ListTagNames returns the names of ListTags in the same order.
func (s *TagStore) ListTagNames(ctx context.Context, kind model.TagKind) ([]string, error) {
	tags, err := s.ListTags(ctx, kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}

// CreateTag stores a new tag. Duplicate names within a kind are allowed.
func (s *TagStore) CreateTag(ctx context.Context, name string, kind model.TagKind) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("tag name", "must not be empty")
	}
	if !kind.Valid() {
		return nil, apperr.Validation("tag kind", fmt.Sprintf("unknown tag kind %q", kind))
	}

	tag := &model.Tag{Name: name, Kind: kind, CreatedAt: s.now().UTC()}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, apperr.Persistence("create tag", err)
	}
	s.logger.Debug("tag created", "id", tag.ID, "kind", kind, "name", name)
	return tag, nil
}

func (s *TagStore) GetTag(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("tag", id.String(), "find tag", err)
	}
	return tag, nil
}

// DeleteTag clears the tag from every item referencing it and removes the
// tag, in one transaction. The stored name and kind drive the cascade, not
// the fields of the argument. It returns how many items were cleared.
func (s *TagStore) DeleteTag(ctx context.Context, tag model.Tag) (int64, error) {
	var cleared int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := repository.NewTagRepository(tx)
		stored, err := tags.GetByID(ctx, tag.ID)
		if err != nil {
			return lookupErr("tag", tag.ID.String(), "find tag", err)
		}

		cleared, err = repository.NewLoggedItemRepository(tx).ClearTag(ctx, stored.Kind, stored.Name)
		if err != nil {
			return apperr.Persistence("clear tag references", err)
		}

		n, err := tags.Delete(ctx, stored.ID)
		if err != nil {
			return apperr.Persistence("delete tag", err)
		}
		if n == 0 {
			return apperr.NotFound("tag", stored.ID.String())
		}
		return nil
	})
	if err != nil {
		var notFound *apperr.NotFoundError
		var persistence *apperr.PersistenceError
		if !errors.As(err, &notFound) && !errors.As(err, &persistence) {
			err = apperr.Persistence("delete tag", err)
		}
		return 0, err
	}

	s.logger.Debug("tag deleted", "id", tag.ID, "items_cleared", cleared)
	return cleared, nil
}
