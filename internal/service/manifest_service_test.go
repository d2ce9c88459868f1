package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-journal/internal/apperr"
	"daily-journal/internal/repository"
)

func newTestManifest(t *testing.T) *ManifestService {
	t.Helper()
	svc := NewManifestService(repository.NewVisionNoteRepository(openTestDB(t)), nil)
	svc.rand = rand.New(rand.NewPCG(1, 2))
	svc.now = newStepClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)).Now
	return svc
}

func TestManifest_AddListDelete(t *testing.T) {
	svc := newTestManifest(t)
	ctx := context.Background()

	first, err := svc.AddNote(ctx, " Dream big, start small ", 0)
	require.NoError(t, err)
	second, err := svc.AddNote(ctx, "Travel the world", 5)
	require.NoError(t, err)
	assert.Equal(t, "Dream big, start small", first.Text)

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID, "board order is oldest first")
	assert.Equal(t, second.ID, notes[1].ID)

	require.NoError(t, svc.DeleteNote(ctx, first.ID))
	assert.True(t, apperr.IsNotFound(svc.DeleteNote(ctx, first.ID)))
	assert.True(t, apperr.IsNotFound(svc.DeleteNote(ctx, uuid.New())))

	notes, err = svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestManifest_PlacementBounds(t *testing.T) {
	svc := newTestManifest(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		note, err := svc.AddNote(ctx, "note", i%6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, note.PosX, 5.0)
		assert.Less(t, note.PosX, 50.0)
		assert.GreaterOrEqual(t, note.PosY, 5.0)
		assert.Less(t, note.PosY, 45.0)
		assert.GreaterOrEqual(t, note.Rotation, -3.0)
		assert.Less(t, note.Rotation, 3.0)
	}
}

func TestManifest_Validation(t *testing.T) {
	svc := newTestManifest(t)
	ctx := context.Background()

	_, err := svc.AddNote(ctx, "  ", 0)
	assert.True(t, apperr.IsValidation(err))
	_, err = svc.AddNote(ctx, "ok", 6)
	assert.True(t, apperr.IsValidation(err))
	_, err = svc.AddNote(ctx, "ok", -1)
	assert.True(t, apperr.IsValidation(err))
}
