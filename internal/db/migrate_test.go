package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{
		"fronts", "projects", "tasks", "day_plan_items",
		"deep_work_sessions", "execution_events",
		"gamification_state", "weekly_allocations", "strategic_reviews",
	} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, Migrate(conn))
	assert.NoError(t, Migrate(conn))
}

func TestMigrate_SeedsScoreSingleton(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM gamification_state`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_SingleActiveSessionIndex(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	seed := `INSERT INTO fronts (id, name, created_at, updated_at) VALUES ('f1', 'F', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z');
		INSERT INTO tasks (id, front_id, title, created_at, updated_at) VALUES ('t1', 'f1', 'T', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z');`
	_, err = conn.Exec(seed)
	require.NoError(t, err)

	insert := `INSERT INTO deep_work_sessions (id, task_id, front_id, started_at, state, target_minutes)
		VALUES (?, 't1', 'f1', '2025-01-01T09:00:00Z', 'active', 45)`
	_, err = conn.Exec(insert, "s1")
	require.NoError(t, err)

	_, err = conn.Exec(insert, "s2")
	assert.Error(t, err, "second active session must violate the partial unique index")
}
