package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
)

// SQLiteDayPlanRepo implements DayPlanRepo over SQLite.
type SQLiteDayPlanRepo struct {
	db db.DBTX
}

func NewSQLiteDayPlanRepo(conn db.DBTX) *SQLiteDayPlanRepo {
	return &SQLiteDayPlanRepo{db: conn}
}

func (r *SQLiteDayPlanRepo) Create(ctx context.Context, item *domain.DayPlanItem) error {
	query := `INSERT INTO day_plan_items (id, plan_date, block_type, task_id, minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.PlanDate.UTC().Format(period.DateLayout),
		string(item.BlockType),
		nullableStr(item.TaskID),
		item.Minutes,
		item.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting day plan item: %w", err)
	}
	return nil
}

func (r *SQLiteDayPlanRepo) ListTaskMinutesBetween(ctx context.Context, start, end time.Time, frontID string) ([]PlanMinutesRow, error) {
	query := `SELECT t.front_id, f.name, i.minutes, t.nature, t.project_id IS NOT NULL
		FROM day_plan_items i
		JOIN tasks t ON i.task_id = t.id
		JOIN fronts f ON t.front_id = f.id
		WHERE i.block_type = 'task'
		  AND i.plan_date >= ? AND i.plan_date < ?`
	args := []any{
		start.UTC().Format(period.DateLayout),
		end.UTC().Format(period.DateLayout),
	}
	if frontID != "" {
		query += ` AND t.front_id = ?`
		args = append(args, frontID)
	}
	query += ` ORDER BY i.plan_date, i.created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plan minutes: %w", err)
	}
	defer rows.Close()

	var result []PlanMinutesRow
	for rows.Next() {
		var row PlanMinutesRow
		var nature string
		var hasProject int
		if err := rows.Scan(&row.FrontID, &row.FrontName, &row.Minutes, &nature, &hasProject); err != nil {
			return nil, fmt.Errorf("scanning plan minutes row: %w", err)
		}
		row.Nature = domain.TaskNature(nature)
		row.HasProject = intToBool(hasProject)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan minutes: %w", err)
	}
	return result, nil
}
