package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
)

const projectColumns = `id, front_id, name, status, last_activity_at, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo over SQLite.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.FrontID,
		p.Name,
		string(p.Status),
		nullableTimeToString(p.LastActivityAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) ListActiveByFront(ctx context.Context, frontID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE front_id = ? AND status = 'ativo' ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, frontID)
	if err != nil {
		return nil, fmt.Errorf("listing active projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, status = ?, last_activity_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Status),
		nullableTimeToString(p.LastActivityAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) TouchActivity(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE projects SET last_activity_at = ?, updated_at = ? WHERE id = ?`
	stamp := at.UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query, stamp, stamp, id)
	if err != nil {
		return fmt.Errorf("touching project activity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanProject scans one project using a row or rows Scan func.
func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var status, createdAt, updatedAt string
	var lastActivity sql.NullString

	if err := scan(&p.ID, &p.FrontID, &p.Name, &status, &lastActivity, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	p.LastActivityAt = parseNullableTime(lastActivity, time.RFC3339)

	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
