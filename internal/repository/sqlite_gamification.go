package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
)

// SQLiteGamificationRepo implements GamificationRepo over SQLite. The state
// is a single seeded row keyed by domain.GamificationStateID; Get re-seeds it
// idempotently so concurrent first reads cannot create duplicates.
type SQLiteGamificationRepo struct {
	db db.DBTX
}

func NewSQLiteGamificationRepo(conn db.DBTX) *SQLiteGamificationRepo {
	return &SQLiteGamificationRepo{db: conn}
}

func (r *SQLiteGamificationRepo) Get(ctx context.Context) (*domain.GamificationState, error) {
	seed := `INSERT OR IGNORE INTO gamification_state (id) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, seed, domain.GamificationStateID); err != nil {
		return nil, fmt.Errorf("seeding gamification state: %w", err)
	}

	query := `SELECT id, current_score, weekly_score, execution_debt, streak_days, last_update
		FROM gamification_state WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.GamificationStateID)

	var s domain.GamificationState
	var lastUpdate string
	err := row.Scan(&s.ID, &s.CurrentScore, &s.WeeklyScore, &s.ExecutionDebt, &s.StreakDays, &lastUpdate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gamification state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning gamification state: %w", err)
	}

	if lastUpdate != "" {
		if s.LastUpdate, err = time.Parse(time.RFC3339, lastUpdate); err != nil {
			return nil, fmt.Errorf("parsing last_update: %w", err)
		}
	}
	return &s, nil
}

func (r *SQLiteGamificationRepo) Update(ctx context.Context, s *domain.GamificationState) error {
	query := `UPDATE gamification_state
		SET current_score = ?, weekly_score = ?, execution_debt = ?, streak_days = ?, last_update = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.CurrentScore,
		s.WeeklyScore,
		s.ExecutionDebt,
		s.StreakDays,
		s.LastUpdate.UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating gamification state: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("gamification state %s: %w", s.ID, ErrNotFound)
	}
	return nil
}
