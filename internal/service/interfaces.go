package service

import (
	"context"

	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
)

type FrontService interface {
	Create(ctx context.Context, f *domain.Front) error
	GetByID(ctx context.Context, id string) (*domain.Front, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Front, error)
	SetMode(ctx context.Context, id string, mode domain.FrontMode) (*domain.Front, error)
	Archive(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListActiveByFront(ctx context.Context, frontID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListOpenByFront(ctx context.Context, frontID string) ([]*domain.Task, error)
	Complete(ctx context.Context, req contract.CompleteTaskRequest) (*contract.ScoreResponse, error)
	Postpone(ctx context.Context, req contract.PostponeTaskRequest) (*contract.ScoreResponse, error)
}

type PlanService interface {
	AddBlock(ctx context.Context, item *domain.DayPlanItem) error
}

type DeepWorkService interface {
	Start(ctx context.Context, req contract.StartDeepWorkRequest) (*domain.DeepWorkSession, error)
	RegisterInterruption(ctx context.Context, sessionID string) (*domain.DeepWorkSession, error)
	RegisterBreak(ctx context.Context, sessionID string) (*domain.DeepWorkSession, error)
	Stop(ctx context.Context, req contract.StopDeepWorkRequest) (*domain.DeepWorkSession, error)
	GetActive(ctx context.Context) (*domain.DeepWorkSession, error)
	GetSummary(ctx context.Context, req contract.DeepWorkSummaryRequest) (*contract.DeepWorkSummaryResponse, error)
}

type ScoreService interface {
	ApplyResult(ctx context.Context, req contract.ApplyResultRequest) (*contract.ScoreResponse, error)
	GetState(ctx context.Context) (*domain.GamificationState, error)
}

type PortfolioService interface {
	GetPortfolio(ctx context.Context, req contract.PortfolioRequest) (*contract.PortfolioResponse, error)
	ResolveGhostFront(ctx context.Context, req contract.ResolveGhostRequest) (*domain.Front, error)
}

type AllocationService interface {
	GetWeekly(ctx context.Context, req contract.GetWeeklyAllocationRequest) (*contract.AllocationResponse, error)
	SetWeekly(ctx context.Context, req contract.SetWeeklyAllocationRequest) error
}

type ReviewService interface {
	GetReview(ctx context.Context, req contract.ReviewRequest) (*contract.ReviewResponse, error)
	SaveJournal(ctx context.Context, req contract.SaveJournalRequest) (*domain.StrategicReview, error)
}
