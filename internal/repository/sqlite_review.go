package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
)

// SQLiteReviewRepo implements ReviewRepo over SQLite. Action items are stored
// as a JSON array to keep ordering.
type SQLiteReviewRepo struct {
	db db.DBTX
}

func NewSQLiteReviewRepo(conn db.DBTX) *SQLiteReviewRepo {
	return &SQLiteReviewRepo{db: conn}
}

func (r *SQLiteReviewRepo) Upsert(ctx context.Context, rev *domain.StrategicReview) error {
	items, err := json.Marshal(rev.ActionItems)
	if err != nil {
		return fmt.Errorf("encoding action items: %w", err)
	}

	query := `INSERT INTO strategic_reviews (
		id, period_type, period_start, front_scope,
		next_priority, strategic_decision, commitment_level,
		action_items, reflection, review_snapshot, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(period_type, period_start, front_scope) DO UPDATE SET
		next_priority = excluded.next_priority,
		strategic_decision = excluded.strategic_decision,
		commitment_level = excluded.commitment_level,
		action_items = excluded.action_items,
		reflection = excluded.reflection,
		review_snapshot = excluded.review_snapshot,
		updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		rev.ID,
		string(rev.PeriodType),
		rev.PeriodStart.UTC().Format(period.DateLayout),
		rev.FrontScope,
		rev.NextPriority,
		rev.StrategicDecision,
		string(rev.CommitmentLevel),
		string(items),
		rev.Reflection,
		rev.ReviewSnapshot,
		rev.CreatedAt.Format(time.RFC3339),
		rev.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting strategic review: %w", err)
	}
	return nil
}

func (r *SQLiteReviewRepo) Get(ctx context.Context, periodType domain.PeriodType, periodStart time.Time, scope string) (*domain.StrategicReview, error) {
	query := `SELECT id, period_type, period_start, front_scope,
		next_priority, strategic_decision, commitment_level,
		action_items, reflection, review_snapshot, created_at, updated_at
		FROM strategic_reviews
		WHERE period_type = ? AND period_start = ? AND front_scope = ?`
	row := r.db.QueryRowContext(ctx, query,
		string(periodType), periodStart.UTC().Format(period.DateLayout), scope)

	var rev domain.StrategicReview
	var pType, pStart, commitment, items, createdAt, updatedAt string
	err := row.Scan(
		&rev.ID, &pType, &pStart, &rev.FrontScope,
		&rev.NextPriority, &rev.StrategicDecision, &commitment,
		&items, &rev.Reflection, &rev.ReviewSnapshot, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("strategic review: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning strategic review: %w", err)
	}

	rev.PeriodType = domain.PeriodType(pType)
	rev.CommitmentLevel = domain.CommitmentLevel(commitment)
	if err := json.Unmarshal([]byte(items), &rev.ActionItems); err != nil {
		return nil, fmt.Errorf("decoding action items: %w", err)
	}
	if rev.PeriodStart, err = time.Parse(period.DateLayout, pStart); err != nil {
		return nil, fmt.Errorf("parsing period_start: %w", err)
	}
	if rev.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rev.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rev, nil
}
