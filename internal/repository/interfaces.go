package repository

import (
	"context"
	"time"

	"github.com/dmagro/tracao/internal/domain"
)

// PlanMinutesRow is a day-plan task block joined with its task's front,
// project link and execution nature. The rollup engine consumes these.
type PlanMinutesRow struct {
	FrontID    string
	FrontName  string
	Minutes    int
	Nature     domain.TaskNature
	HasProject bool
}

type FrontRepo interface {
	Create(ctx context.Context, f *domain.Front) error
	GetByID(ctx context.Context, id string) (*domain.Front, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Front, error)
	Update(ctx context.Context, f *domain.Front) error
	Archive(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListActiveByFront(ctx context.Context, frontID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	// TouchActivity stamps the project's last strategic activity. Deep-work
	// stops and task completions call it; traction derives from it.
	TouchActivity(ctx context.Context, id string, at time.Time) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListOpenByFront(ctx context.Context, frontID string) ([]*domain.Task, error)
	ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*domain.Task, error)
	CountOpenTaskA(ctx context.Context, frontID string) (int, error)
	CountTaskACompletedBetween(ctx context.Context, frontID string, start, end time.Time) (int, error)
	Update(ctx context.Context, t *domain.Task) error
}

type DayPlanRepo interface {
	Create(ctx context.Context, item *domain.DayPlanItem) error
	// ListTaskMinutesBetween returns joined task-block rows for [start, end),
	// optionally restricted to one front ("" means all fronts).
	ListTaskMinutesBetween(ctx context.Context, start, end time.Time, frontID string) ([]PlanMinutesRow, error)
}

type DeepWorkRepo interface {
	Create(ctx context.Context, s *domain.DeepWorkSession) error
	GetByID(ctx context.Context, id string) (*domain.DeepWorkSession, error)
	// GetActive returns the single active session, or ErrNotFound.
	GetActive(ctx context.Context) (*domain.DeepWorkSession, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.DeepWorkSession, error)
	Update(ctx context.Context, s *domain.DeepWorkSession) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.ExecutionEvent) error
	// ListBetween returns events in [start, end), optionally restricted to
	// one front ("" means all fronts).
	ListBetween(ctx context.Context, start, end time.Time, frontID string) ([]*domain.ExecutionEvent, error)
}

type GamificationRepo interface {
	// Get returns the singleton state, creating the seeded row if a vacuum
	// or manual delete removed it.
	Get(ctx context.Context) (*domain.GamificationState, error)
	Update(ctx context.Context, s *domain.GamificationState) error
}

type AllocationRepo interface {
	Upsert(ctx context.Context, a *domain.WeeklyAllocation) error
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.WeeklyAllocation, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.WeeklyAllocation, error)
}

type ReviewRepo interface {
	Upsert(ctx context.Context, r *domain.StrategicReview) error
	Get(ctx context.Context, periodType domain.PeriodType, periodStart time.Time, scope string) (*domain.StrategicReview, error)
}
