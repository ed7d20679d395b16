package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
)

const frontColumns = `id, name, mode, archived_at, created_at, updated_at`

// SQLiteFrontRepo implements FrontRepo over SQLite.
type SQLiteFrontRepo struct {
	db db.DBTX
}

func NewSQLiteFrontRepo(conn db.DBTX) *SQLiteFrontRepo {
	return &SQLiteFrontRepo{db: conn}
}

func (r *SQLiteFrontRepo) Create(ctx context.Context, f *domain.Front) error {
	query := `INSERT INTO fronts (` + frontColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Name,
		string(f.Mode),
		nullableTimeToString(f.ArchivedAt, time.RFC3339),
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting front: %w", err)
	}
	return nil
}

func (r *SQLiteFrontRepo) GetByID(ctx context.Context, id string) (*domain.Front, error) {
	query := `SELECT ` + frontColumns + ` FROM fronts WHERE id = ?`
	return r.scanFront(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteFrontRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Front, error) {
	query := `SELECT ` + frontColumns + ` FROM fronts`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fronts: %w", err)
	}
	defer rows.Close()

	var fronts []*domain.Front
	for rows.Next() {
		f, err := scanFrontRow(rows)
		if err != nil {
			return nil, err
		}
		fronts = append(fronts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fronts: %w", err)
	}
	return fronts, nil
}

func (r *SQLiteFrontRepo) Update(ctx context.Context, f *domain.Front) error {
	query := `UPDATE fronts SET name = ?, mode = ?, archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		f.Name,
		string(f.Mode),
		nullableTimeToString(f.ArchivedAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating front: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("front %s: %w", f.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteFrontRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE fronts SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving front: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("front %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteFrontRepo) scanFront(row *sql.Row) (*domain.Front, error) {
	var f domain.Front
	var mode, createdAt, updatedAt string
	var archivedAt sql.NullString

	err := row.Scan(&f.ID, &f.Name, &mode, &archivedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("front: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning front: %w", err)
	}
	return populateFront(&f, mode, archivedAt, createdAt, updatedAt)
}

func scanFrontRow(rows *sql.Rows) (*domain.Front, error) {
	var f domain.Front
	var mode, createdAt, updatedAt string
	var archivedAt sql.NullString

	if err := rows.Scan(&f.ID, &f.Name, &mode, &archivedAt, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning front row: %w", err)
	}
	return populateFront(&f, mode, archivedAt, createdAt, updatedAt)
}

func populateFront(f *domain.Front, mode string, archivedAt sql.NullString, createdAt, updatedAt string) (*domain.Front, error) {
	f.Mode = domain.FrontMode(mode)
	f.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)

	var err error
	if f.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if f.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return f, nil
}
