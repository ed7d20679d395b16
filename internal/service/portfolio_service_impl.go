package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
	"github.com/dmagro/tracao/internal/period"
	"github.com/dmagro/tracao/internal/repository"
)

type portfolioService struct {
	fronts     repository.FrontRepo
	projects   repository.ProjectRepo
	tasks      repository.TaskRepo
	uow        db.UnitOfWork
	windowDays int
	observer   UseCaseObserver
}

// NewPortfolioService builds the health/ghost read model. windowDays is the
// traction lookback; zero falls back to the engine default.
func NewPortfolioService(
	fronts repository.FrontRepo,
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	windowDays int,
	observers ...UseCaseObserver,
) PortfolioService {
	if windowDays <= 0 {
		windowDays = engine.TractionWindowDays
	}
	return &portfolioService{
		fronts:     fronts,
		projects:   projects,
		tasks:      tasks,
		uow:        uow,
		windowDays: windowDays,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// buildFrontViews assembles the classifier inputs for every non-archived
// front over [start, end) and runs the health and ghost predicates. Traction
// is measured relative to the window end.
func buildFrontViews(
	ctx context.Context,
	fronts repository.FrontRepo,
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	start, end time.Time,
	windowDays int,
) ([]app.FrontPortfolioView, error) {
	all, err := fronts.List(ctx, false)
	if err != nil {
		return nil, err
	}

	views := make([]app.FrontPortfolioView, 0, len(all))
	for _, f := range all {
		active, err := projects.ListActiveByFront(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		withTraction := 0
		for _, p := range active {
			if p.HasTraction(end, windowDays) {
				withTraction++
			}
		}

		openA, err := tasks.CountOpenTaskA(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		doneA, err := tasks.CountTaskACompletedBetween(ctx, f.ID, start, end)
		if err != nil {
			return nil, err
		}
		hasSignal := openA > 0 || doneA > 0

		views = append(views, app.FrontPortfolioView{
			FrontID:              f.ID,
			FrontName:            f.Name,
			Mode:                 f.Mode,
			ActiveProjects:       len(active),
			ProjectsWithTraction: withTraction,
			HasTaskASignal:       hasSignal,
			Health: engine.ClassifyFrontHealth(engine.HealthInput{
				Mode:                 f.Mode,
				ActiveProjects:       len(active),
				ProjectsWithTraction: withTraction,
				HasTaskASignal:       hasSignal,
			}),
			IsGhost: engine.IsGhostFront(f.Mode, withTraction, hasSignal),
		})
	}
	return views, nil
}

func (s *portfolioService) GetPortfolio(ctx context.Context, req app.PortfolioRequest) (*app.PortfolioResponse, error) {
	now := time.Now().UTC()
	weekStart := req.WeekStart
	if weekStart.IsZero() {
		weekStart = period.WeekStart(now)
	} else {
		weekStart = period.WeekStart(weekStart)
	}
	weekEnd := period.WeekEnd(weekStart)

	views, err := buildFrontViews(ctx, s.fronts, s.projects, s.tasks, weekStart, weekEnd, s.windowDays)
	if err != nil {
		return nil, err
	}

	resp := &app.PortfolioResponse{
		GeneratedAt: now,
		WeekStart:   weekStart,
		Fronts:      views,
	}
	for _, v := range views {
		if v.IsGhost {
			resp.GhostCount++
		}
	}
	return resp, nil
}

func (s *portfolioService) ResolveGhostFront(ctx context.Context, req app.ResolveGhostRequest) (front *domain.Front, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"front_id": req.FrontID, "action": string(req.Action)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "portfolio-resolve-ghost",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	switch req.Action {
	case app.GhostActionReactivate, app.GhostActionStandby, app.GhostActionArchive:
	default:
		return nil, &app.PortfolioError{
			Code:    app.PortfolioErrInvalidAction,
			Message: fmt.Sprintf("unknown ghost action %q", req.Action),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFronts := repository.NewSQLiteFrontRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		f, err := txFronts.GetByID(ctx, req.FrontID)
		if err != nil {
			return err
		}

		// Re-derive ghost status inside the transaction; resolving a front
		// that regained traction in the meantime would be destructive.
		now := time.Now().UTC()
		weekStart := period.WeekStart(now)
		active, err := txProjects.ListActiveByFront(ctx, f.ID)
		if err != nil {
			return err
		}
		withTraction := 0
		for _, p := range active {
			if p.HasTraction(period.WeekEnd(weekStart), s.windowDays) {
				withTraction++
			}
		}
		openA, err := txTasks.CountOpenTaskA(ctx, f.ID)
		if err != nil {
			return err
		}
		doneA, err := txTasks.CountTaskACompletedBetween(ctx, f.ID, weekStart, period.WeekEnd(weekStart))
		if err != nil {
			return err
		}
		if !engine.IsGhostFront(f.Mode, withTraction, openA > 0 || doneA > 0) {
			return &app.PortfolioError{
				Code:    app.PortfolioErrNotGhost,
				Message: fmt.Sprintf("front '%s' is not a ghost front", f.Name),
			}
		}

		switch req.Action {
		case app.GhostActionReactivate:
			f.Mode = domain.ModeAceleracao
		case app.GhostActionStandby:
			f.Mode = domain.ModeStandby
		case app.GhostActionArchive:
			if err := txFronts.Archive(ctx, f.ID); err != nil {
				return err
			}
			f.ArchivedAt = &now
			front = f
			return nil
		}
		f.UpdatedAt = now
		if err := txFronts.Update(ctx, f); err != nil {
			return err
		}
		front = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return front, nil
}
