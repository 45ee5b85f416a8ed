package repository_test

import (
	"context"
	"testing"
	"time"

	"formationpro/internal/model"
	repo "formationpro/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSession(status model.SessionStatus) *model.Session {
	now := time.Now()
	comment := "session created"
	return &model.Session{
		ID:              uuid.New(),
		TrainingID:      uuid.New(),
		StartDate:       now.AddDate(0, 1, 0),
		EndDate:         now.AddDate(0, 1, 2),
		Location:        "Paris",
		TrainerID:       uuid.New(),
		MaxParticipants: 10,
		Status:          status,
		StatusHistory: []model.StatusHistoryEntry{
			{ID: uuid.New(), Status: status, Date: now, UserID: uuid.New(), UserName: "Admin", Comment: &comment},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemorySessionRepository_InsertAndFindByID(t *testing.T) {
	r := repo.NewMemorySessionRepository()
	sess := newSession(model.SessionScheduled)

	require.NoError(t, r.Insert(context.Background(), sess))

	found, err := r.FindByID(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, sess.ID, found.ID)
	require.Len(t, found.StatusHistory, 1)
}

func TestMemorySessionRepository_FindByID_Missing(t *testing.T) {
	r := repo.NewMemorySessionRepository()

	found, err := r.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestMemorySessionRepository_List_InsertionOrder(t *testing.T) {
	r := repo.NewMemorySessionRepository()
	first := newSession(model.SessionScheduled)
	second := newSession(model.SessionConfirmed)

	require.NoError(t, r.Insert(context.Background(), first))
	require.NoError(t, r.Insert(context.Background(), second))

	sessions, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, first.ID, sessions[0].ID)
	require.Equal(t, second.ID, sessions[1].ID)
}

func TestMemorySessionRepository_ReturnsCopies(t *testing.T) {
	r := repo.NewMemorySessionRepository()
	sess := newSession(model.SessionScheduled)
	require.NoError(t, r.Insert(context.Background(), sess))

	found, err := r.FindByID(context.Background(), sess.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the stored session.
	found.Status = model.SessionCancelled
	found.StatusHistory = append(found.StatusHistory, model.StatusHistoryEntry{ID: uuid.New(), Status: model.SessionCancelled})

	again, err := r.FindByID(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, model.SessionScheduled, again.Status)
	require.Len(t, again.StatusHistory, 1)
}

func TestMemorySessionRepository_Update_Missing(t *testing.T) {
	r := repo.NewMemorySessionRepository()

	err := r.Update(context.Background(), newSession(model.SessionScheduled))
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMemorySessionRepository_Delete_Idempotent(t *testing.T) {
	r := repo.NewMemorySessionRepository()
	sess := newSession(model.SessionScheduled)
	require.NoError(t, r.Insert(context.Background(), sess))

	require.NoError(t, r.Delete(context.Background(), sess.ID))
	require.NoError(t, r.Delete(context.Background(), sess.ID))

	found, err := r.FindByID(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}
