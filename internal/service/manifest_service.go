package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"daily-journal/internal/apperr"
	"daily-journal/internal/model"
	"daily-journal/internal/repository"
)

// ManifestService manages the notes pinned to the vision board.
type ManifestService struct {
	notes  *repository.VisionNoteRepository
	logger *slog.Logger
	rand   *rand.Rand
	now    func() time.Time
}

func NewManifestService(notes *repository.VisionNoteRepository, logger *slog.Logger) *ManifestService {
	return &ManifestService{
		notes:  notes,
		logger: componentLogger(logger, "manifest"),
		rand:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:    time.Now,
	}
}

// ListNotes returns the board's notes oldest first.
func (s *ManifestService) ListNotes(ctx context.Context) ([]model.VisionNote, error) {
	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("list vision notes", err)
	}
	if notes == nil {
		notes = []model.VisionNote{}
	}
	return notes, nil
}

// AddNote pins a note at a random spot with a slight tilt.
func (s *ManifestService) AddNote(ctx context.Context, text string, style int) (*model.VisionNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("note text", "must not be empty")
	}
	if style < 0 || style >= model.VisionNoteStyles {
		return nil, apperr.Validation("note style", fmt.Sprintf("want 0..%d, got %d", model.VisionNoteStyles-1, style))
	}

	note := &model.VisionNote{
		Text:      text,
		Style:     style,
		PosX:      5 + s.rand.Float64()*45,
		PosY:      5 + s.rand.Float64()*40,
		Rotation:  s.rand.Float64()*6 - 3,
		CreatedAt: s.now().UTC(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, apperr.Persistence("add vision note", err)
	}
	s.logger.Debug("vision note added", "id", note.ID, "style", style)
	return note, nil
}

func (s *ManifestService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	n, err := s.notes.Delete(ctx, id)
	if err != nil {
		return apperr.Persistence("delete vision note", err)
	}
	if n == 0 {
		return apperr.NotFound("vision note", id.String())
	}
	return nil
}
