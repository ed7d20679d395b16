package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveSession(taskID, frontID string, startedAt time.Time) *domain.DeepWorkSession {
	return &domain.DeepWorkSession{
		ID:            uuid.New().String(),
		TaskID:        taskID,
		FrontID:       frontID,
		StartedAt:     startedAt,
		State:         domain.SessionActive,
		TargetMinutes: 90,
	}
}

func seedTaskWithFront(t *testing.T, ctx context.Context, fronts *SQLiteFrontRepo, tasks *SQLiteTaskRepo, title string) (*domain.Front, *domain.Task) {
	t.Helper()
	front := testutil.NewTestFront("Front " + title)
	require.NoError(t, fronts.Create(ctx, front))
	task := testutil.NewTestTask(front.ID, title)
	require.NoError(t, tasks.Create(ctx, task))
	return front, task
}

// TestDeepWorkRepo_SecondActiveRejected verifies the partial unique index on
// state='active': inserting a second active row fails at the database even
// when the application check is bypassed.
func TestDeepWorkRepo_SecondActiveRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	fronts := NewSQLiteFrontRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	sessions := NewSQLiteDeepWorkRepo(db)

	_, taskA := seedTaskWithFront(t, ctx, fronts, tasks, "A")
	_, taskB := seedTaskWithFront(t, ctx, fronts, tasks, "B")

	now := time.Now().UTC()
	require.NoError(t, sessions.Create(ctx, newActiveSession(taskA.ID, taskA.FrontID, now)))

	err := sessions.Create(ctx, newActiveSession(taskB.ID, taskB.FrontID, now))
	assert.Error(t, err, "second active session must violate the unique index")
}

func TestDeepWorkRepo_TerminalSessionsCoexist(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	fronts := NewSQLiteFrontRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	sessions := NewSQLiteDeepWorkRepo(db)

	_, task := seedTaskWithFront(t, ctx, fronts, tasks, "A")

	now := time.Now().UTC()
	first := newActiveSession(task.ID, task.FrontID, now.Add(-2*time.Hour))
	first.Finish(now.Add(-time.Hour), false, "")
	require.NoError(t, sessions.Create(ctx, first))

	second := newActiveSession(task.ID, task.FrontID, now.Add(-30*time.Minute))
	second.Finish(now, true, "trocou de tarefa")
	require.NoError(t, sessions.Create(ctx, second))

	// A new active session is still allowed once the others are terminal.
	require.NoError(t, sessions.Create(ctx, newActiveSession(task.ID, task.FrontID, now)))
}

func TestDeepWorkRepo_GetActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	fronts := NewSQLiteFrontRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	sessions := NewSQLiteDeepWorkRepo(db)

	_, err := sessions.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, task := seedTaskWithFront(t, ctx, fronts, tasks, "A")
	created := newActiveSession(task.ID, task.FrontID, time.Now().UTC())
	require.NoError(t, sessions.Create(ctx, created))

	active, err := sessions.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, active.ID)
	assert.Equal(t, domain.SessionActive, active.State)
}

func TestDeepWorkRepo_UpdatePersistsOutcome(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	fronts := NewSQLiteFrontRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	sessions := NewSQLiteDeepWorkRepo(db)

	_, task := seedTaskWithFront(t, ctx, fronts, tasks, "A")

	started := time.Now().UTC().Add(-50 * time.Minute).Truncate(time.Second)
	s := newActiveSession(task.ID, task.FrontID, started)
	require.NoError(t, sessions.Create(ctx, s))

	require.NoError(t, s.RegisterInterruption())
	s.Finish(started.Add(50*time.Minute), false, "fechou o bloco")
	require.NoError(t, sessions.Update(ctx, s))

	got, err := sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.State)
	assert.Equal(t, 50, got.ActualMinutes)
	assert.Equal(t, 1, got.InterruptionCount)
	assert.Equal(t, "fechou o bloco", got.Notes)
	require.NotNil(t, got.EndedAt)
}

func TestDeepWorkRepo_ListBetweenIsHalfOpen(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	fronts := NewSQLiteFrontRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	sessions := NewSQLiteDeepWorkRepo(db)

	_, task := seedTaskWithFront(t, ctx, fronts, tasks, "A")

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, startedAt := range []time.Time{
		day.Add(-time.Minute),               // before the range
		day.Add(9 * time.Hour),              // inside
		day.Add(24*time.Hour - time.Second), // last second still inside
		day.Add(24 * time.Hour),             // exactly at the open end
	} {
		s := newActiveSession(task.ID, task.FrontID, startedAt)
		s.Finish(startedAt.Add(time.Hour), false, "")
		require.NoError(t, sessions.Create(ctx, s))
	}

	got, err := sessions.ListBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].StartedAt.Before(got[1].StartedAt))
}
