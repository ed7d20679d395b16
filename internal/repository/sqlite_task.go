package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
)

const taskColumns = `id, front_id, project_id, title, type, status, nature,
		priority, multi_block, waiting_on, due_date, completed_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.FrontID,
		nullableStr(t.ProjectID),
		t.Title,
		string(t.Type),
		string(t.Status),
		string(t.Nature),
		t.Priority,
		boolToInt(t.MultiBlock),
		t.WaitingOn,
		nullableTimeToString(t.DueDate, period.DateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListOpenByFront(ctx context.Context, frontID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE front_id = ? AND status = 'pendente'
		ORDER BY priority DESC, created_at`
	return r.queryTasks(ctx, query, frontID)
}

func (r *SQLiteTaskRepo) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE status = 'feito' AND completed_at >= ? AND completed_at < ?
		ORDER BY completed_at`
	return r.queryTasks(ctx, query,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
}

func (r *SQLiteTaskRepo) CountOpenTaskA(ctx context.Context, frontID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks
		WHERE front_id = ? AND type = 'a' AND status = 'pendente'`
	var count int
	if err := r.db.QueryRowContext(ctx, query, frontID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting open task-A: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) CountTaskACompletedBetween(ctx context.Context, frontID string, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM tasks
		WHERE front_id = ? AND type = 'a' AND status = 'feito'
		  AND completed_at >= ? AND completed_at < ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, frontID,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting completed task-A: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, title = ?, type = ?, status = ?, nature = ?,
		priority = ?, multi_block = ?, waiting_on = ?, due_date = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStr(t.ProjectID),
		t.Title,
		string(t.Type),
		string(t.Status),
		string(t.Nature),
		t.Priority,
		boolToInt(t.MultiBlock),
		t.WaitingOn,
		nullableTimeToString(t.DueDate, period.DateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var taskType, status, nature, createdAt, updatedAt string
	var projectID, dueDate, completedAt sql.NullString
	var multiBlock int

	err := scan(
		&t.ID, &t.FrontID, &projectID, &t.Title, &taskType, &status, &nature,
		&t.Priority, &multiBlock, &t.WaitingOn, &dueDate, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.ProjectID = strPtr(projectID)
	t.Type = domain.TaskType(taskType)
	t.Status = domain.TaskStatus(status)
	t.Nature = domain.TaskNature(nature)
	t.MultiBlock = intToBool(multiBlock)
	t.DueDate = parseNullableTime(dueDate, period.DateLayout)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
