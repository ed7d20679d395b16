package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
)

// SQLiteEventRepo implements EventRepo over SQLite. The log is append-only;
// there is no update or delete path.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.ExecutionEvent) error {
	var reason interface{}
	if e.FailureReason != nil {
		reason = string(*e.FailureReason)
	}

	query := `INSERT INTO execution_events (id, task_id, front_id, event_type, failure_reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.TaskID,
		e.FrontID,
		string(e.Type),
		reason,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting execution event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) ListBetween(ctx context.Context, start, end time.Time, frontID string) ([]*domain.ExecutionEvent, error) {
	query := `SELECT id, task_id, front_id, event_type, failure_reason, created_at
		FROM execution_events
		WHERE created_at >= ? AND created_at < ?`
	args := []any{
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	}
	if frontID != "" {
		query += ` AND front_id = ?`
		args = append(args, frontID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing execution events: %w", err)
	}
	defer rows.Close()

	var events []*domain.ExecutionEvent
	for rows.Next() {
		var e domain.ExecutionEvent
		var eventType, createdAt string
		var reason sql.NullString

		if err := rows.Scan(&e.ID, &e.TaskID, &e.FrontID, &eventType, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning execution event: %w", err)
		}

		e.Type = domain.EventType(eventType)
		if reason.Valid && reason.String != "" {
			fr := domain.FailureReason(reason.String)
			e.FailureReason = &fr
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating execution events: %w", err)
	}
	return events, nil
}
