package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema statements in order. Statements are idempotent;
// "duplicate column name" from re-run ALTER TABLEs is tolerated.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS fronts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		mode        TEXT NOT NULL DEFAULT 'manutencao'
		            CHECK(mode IN ('aceleracao','manutencao','standby')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id               TEXT PRIMARY KEY,
		front_id         TEXT NOT NULL REFERENCES fronts(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'ativo'
		                 CHECK(status IN ('ativo','concluido','arquivado')),
		last_activity_at TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_front ON projects(front_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		front_id     TEXT NOT NULL REFERENCES fronts(id) ON DELETE CASCADE,
		project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
		title        TEXT NOT NULL,
		type         TEXT NOT NULL DEFAULT 'b' CHECK(type IN ('a','b','c')),
		status       TEXT NOT NULL DEFAULT 'pendente'
		             CHECK(status IN ('pendente','feito','arquivado')),
		nature       TEXT NOT NULL DEFAULT 'operacao'
		             CHECK(nature IN ('construcao','operacao')),
		priority     INTEGER NOT NULL DEFAULT 0,
		multi_block  INTEGER NOT NULL DEFAULT 0,
		waiting_on   TEXT NOT NULL DEFAULT '',
		due_date     TEXT,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_front ON tasks(front_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS day_plan_items (
		id         TEXT PRIMARY KEY,
		plan_date  TEXT NOT NULL,
		block_type TEXT NOT NULL DEFAULT 'task'
		           CHECK(block_type IN ('task','rotina','pausa')),
		task_id    TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		minutes    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_day_plan_items_date ON day_plan_items(plan_date)`,

	`CREATE TABLE IF NOT EXISTS deep_work_sessions (
		id                 TEXT PRIMARY KEY,
		task_id            TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		front_id           TEXT NOT NULL REFERENCES fronts(id) ON DELETE CASCADE,
		project_id         TEXT REFERENCES projects(id) ON DELETE SET NULL,
		started_at         TEXT NOT NULL,
		ended_at           TEXT,
		state              TEXT NOT NULL DEFAULT 'active'
		                   CHECK(state IN ('active','completed','broken')),
		target_minutes     INTEGER NOT NULL,
		actual_minutes     INTEGER NOT NULL DEFAULT 0,
		interruption_count INTEGER NOT NULL DEFAULT 0,
		break_count        INTEGER NOT NULL DEFAULT 0,
		notes              TEXT NOT NULL DEFAULT ''
	)`,

	// Deep work is an exclusive resource: the partial index makes a second
	// active row impossible, closing the check-then-insert race.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_deep_work_single_active
		ON deep_work_sessions(state) WHERE state = 'active'`,

	`CREATE INDEX IF NOT EXISTS idx_deep_work_started ON deep_work_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS execution_events (
		id             TEXT PRIMARY KEY,
		task_id        TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		front_id       TEXT NOT NULL REFERENCES fronts(id) ON DELETE CASCADE,
		event_type     TEXT NOT NULL
		               CHECK(event_type IN ('completed','delayed','failed')),
		failure_reason TEXT
		               CHECK(failure_reason IS NULL OR failure_reason IN
		               ('energia','medo','distracao','dependencia','falta_clareza','falta_habilidade')),
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_execution_events_created ON execution_events(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_execution_events_front ON execution_events(front_id)`,

	`CREATE TABLE IF NOT EXISTS gamification_state (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		current_score  INTEGER NOT NULL DEFAULT 0,
		weekly_score   INTEGER NOT NULL DEFAULT 0,
		execution_debt INTEGER NOT NULL DEFAULT 0,
		streak_days    INTEGER NOT NULL DEFAULT 0,
		last_update    TEXT NOT NULL DEFAULT ''
	)`,

	// Seed the singleton score row so get-or-create never races.
	`INSERT OR IGNORE INTO gamification_state (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS weekly_allocations (
		front_id    TEXT NOT NULL REFERENCES fronts(id) ON DELETE CASCADE,
		week_start  TEXT NOT NULL,
		planned_pct INTEGER NOT NULL CHECK(planned_pct BETWEEN 0 AND 100),
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (front_id, week_start)
	)`,

	`CREATE TABLE IF NOT EXISTS strategic_reviews (
		id                 TEXT PRIMARY KEY,
		period_type        TEXT NOT NULL CHECK(period_type IN ('weekly','monthly')),
		period_start       TEXT NOT NULL,
		front_scope        TEXT NOT NULL DEFAULT 'all',
		next_priority      TEXT NOT NULL DEFAULT '',
		strategic_decision TEXT NOT NULL DEFAULT '',
		commitment_level   TEXT NOT NULL DEFAULT 'medio'
		                   CHECK(commitment_level IN ('baixo','medio','alto')),
		action_items       TEXT NOT NULL DEFAULT '[]',
		reflection         TEXT NOT NULL DEFAULT '',
		review_snapshot    TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_strategic_reviews_cell
		ON strategic_reviews(period_type, period_start, front_scope)`,
}
