package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
)

// SQLiteAllocationRepo implements AllocationRepo over SQLite. Writes are
// upserts keyed (front_id, week_start); last writer wins.
type SQLiteAllocationRepo struct {
	db db.DBTX
}

func NewSQLiteAllocationRepo(conn db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: conn}
}

func (r *SQLiteAllocationRepo) Upsert(ctx context.Context, a *domain.WeeklyAllocation) error {
	query := `INSERT INTO weekly_allocations (front_id, week_start, planned_pct, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(front_id, week_start) DO UPDATE
		SET planned_pct = excluded.planned_pct, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.FrontID,
		a.WeekStart.UTC().Format(period.DateLayout),
		a.PlannedPct,
		a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting weekly allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.WeeklyAllocation, error) {
	query := `SELECT front_id, week_start, planned_pct, updated_at
		FROM weekly_allocations WHERE week_start = ? ORDER BY front_id`
	return r.queryAllocations(ctx, query, weekStart.UTC().Format(period.DateLayout))
}

func (r *SQLiteAllocationRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.WeeklyAllocation, error) {
	query := `SELECT front_id, week_start, planned_pct, updated_at
		FROM weekly_allocations
		WHERE week_start >= ? AND week_start < ?
		ORDER BY week_start, front_id`
	return r.queryAllocations(ctx, query,
		start.UTC().Format(period.DateLayout), end.UTC().Format(period.DateLayout))
}

func (r *SQLiteAllocationRepo) queryAllocations(ctx context.Context, query string, args ...any) ([]*domain.WeeklyAllocation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing weekly allocations: %w", err)
	}
	defer rows.Close()

	var allocations []*domain.WeeklyAllocation
	for rows.Next() {
		var a domain.WeeklyAllocation
		var weekStart, updatedAt string
		if err := rows.Scan(&a.FrontID, &weekStart, &a.PlannedPct, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning weekly allocation: %w", err)
		}
		if a.WeekStart, err = time.Parse(period.DateLayout, weekStart); err != nil {
			return nil, fmt.Errorf("parsing week_start: %w", err)
		}
		if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		allocations = append(allocations, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weekly allocations: %w", err)
	}
	return allocations, nil
}
