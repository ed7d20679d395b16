package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
)

const deepWorkColumns = `id, task_id, front_id, project_id, started_at, ended_at,
		state, target_minutes, actual_minutes, interruption_count, break_count, notes`

// SQLiteDeepWorkRepo implements DeepWorkRepo over SQLite. The schema's partial
// unique index on state='active' backs the single-active-session invariant;
// Create surfaces its violation as a constraint error.
type SQLiteDeepWorkRepo struct {
	db db.DBTX
}

func NewSQLiteDeepWorkRepo(conn db.DBTX) *SQLiteDeepWorkRepo {
	return &SQLiteDeepWorkRepo{db: conn}
}

func (r *SQLiteDeepWorkRepo) Create(ctx context.Context, s *domain.DeepWorkSession) error {
	query := `INSERT INTO deep_work_sessions (` + deepWorkColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TaskID,
		s.FrontID,
		nullableStr(s.ProjectID),
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		string(s.State),
		s.TargetMinutes,
		s.ActualMinutes,
		s.InterruptionCount,
		s.BreakCount,
		s.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting deep work session: %w", err)
	}
	return nil
}

func (r *SQLiteDeepWorkRepo) GetByID(ctx context.Context, id string) (*domain.DeepWorkSession, error) {
	query := `SELECT ` + deepWorkColumns + ` FROM deep_work_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanDeepWork(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deep work session: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteDeepWorkRepo) GetActive(ctx context.Context) (*domain.DeepWorkSession, error) {
	query := `SELECT ` + deepWorkColumns + ` FROM deep_work_sessions WHERE state = 'active'`
	row := r.db.QueryRowContext(ctx, query)

	s, err := scanDeepWork(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("active deep work session: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteDeepWorkRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.DeepWorkSession, error) {
	query := `SELECT ` + deepWorkColumns + ` FROM deep_work_sessions
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing deep work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.DeepWorkSession
	for rows.Next() {
		s, err := scanDeepWork(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deep work sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteDeepWorkRepo) Update(ctx context.Context, s *domain.DeepWorkSession) error {
	query := `UPDATE deep_work_sessions SET ended_at = ?, state = ?, actual_minutes = ?,
		interruption_count = ?, break_count = ?, notes = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(s.EndedAt, time.RFC3339),
		string(s.State),
		s.ActualMinutes,
		s.InterruptionCount,
		s.BreakCount,
		s.Notes,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deep work session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("deep work session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func scanDeepWork(scan func(dest ...any) error) (*domain.DeepWorkSession, error) {
	var s domain.DeepWorkSession
	var state, startedAt string
	var projectID, endedAt sql.NullString

	err := scan(
		&s.ID, &s.TaskID, &s.FrontID, &projectID, &startedAt, &endedAt,
		&state, &s.TargetMinutes, &s.ActualMinutes, &s.InterruptionCount, &s.BreakCount, &s.Notes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning deep work session: %w", err)
	}

	s.ProjectID = strPtr(projectID)
	s.State = domain.SessionState(state)
	s.EndedAt = parseNullableTime(endedAt, time.RFC3339)

	if s.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	return &s, nil
}
