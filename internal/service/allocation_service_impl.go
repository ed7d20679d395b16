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

type allocationService struct {
	allocations repository.AllocationRepo
	fronts      repository.FrontRepo
	plans       repository.DayPlanRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewAllocationService(
	allocations repository.AllocationRepo,
	fronts repository.FrontRepo,
	plans repository.DayPlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AllocationService {
	return &allocationService{
		allocations: allocations,
		fronts:      fronts,
		plans:       plans,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *allocationService) GetWeekly(ctx context.Context, req app.GetWeeklyAllocationRequest) (*app.AllocationResponse, error) {
	weekStart := req.WeekStart
	if weekStart.IsZero() {
		weekStart = time.Now().UTC()
	}
	weekStart = period.WeekStart(weekStart)
	weekEnd := period.WeekEnd(weekStart)

	stored, err := s.allocations.ListByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	names, err := frontNameIndex(ctx, s.fronts)
	if err != nil {
		return nil, err
	}

	planned := make([]engine.PlannedShare, 0, len(stored))
	for _, a := range stored {
		planned = append(planned, engine.PlannedShare{
			FrontID:   a.FrontID,
			FrontName: names[a.FrontID],
			Pct:       a.PlannedPct,
		})
	}

	rows, err := s.plans.ListTaskMinutesBetween(ctx, weekStart, weekEnd, req.FrontID)
	if err != nil {
		return nil, err
	}
	snap := engine.CollectFrontMinutes(planEntries(rows))

	return &app.AllocationResponse{
		WeekStart:    weekStart,
		WeekEnd:      weekEnd,
		TotalMinutes: snap.TotalMinutes,
		Rows:         engine.BuildAllocationRows(planned, snap),
	}, nil
}

func (s *allocationService) SetWeekly(ctx context.Context, req app.SetWeeklyAllocationRequest) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"fronts": len(req.Allocations)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "allocation-set-weekly",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	weekStart := req.WeekStart
	if weekStart.IsZero() {
		weekStart = time.Now().UTC()
	}
	weekStart = period.WeekStart(weekStart)

	seen := make(map[string]bool, len(req.Allocations))
	sum := 0
	for _, in := range req.Allocations {
		if in.FrontID == "" {
			return &app.AllocationError{Code: app.AllocationErrValidation, Message: "front id is required"}
		}
		if seen[in.FrontID] {
			return &app.AllocationError{
				Code:    app.AllocationErrValidation,
				Message: fmt.Sprintf("front %s appears twice", in.FrontID),
			}
		}
		seen[in.FrontID] = true
		if in.PlannedPct < 0 || in.PlannedPct > 100 {
			return &app.AllocationError{
				Code:    app.AllocationErrValidation,
				Message: fmt.Sprintf("planned pct %d out of range [0, 100]", in.PlannedPct),
			}
		}
		sum += in.PlannedPct
	}
	if sum > 100 {
		return &app.AllocationError{
			Code:    app.AllocationErrInvalidSum,
			Message: fmt.Sprintf("planned percentages sum to %d, above 100", sum),
		}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFronts := repository.NewSQLiteFrontRepo(tx)
		txAllocations := repository.NewSQLiteAllocationRepo(tx)

		now := time.Now().UTC()
		for _, in := range req.Allocations {
			if _, err := txFronts.GetByID(ctx, in.FrontID); err != nil {
				return err
			}
			if err := txAllocations.Upsert(ctx, &domain.WeeklyAllocation{
				FrontID:    in.FrontID,
				WeekStart:  weekStart,
				PlannedPct: in.PlannedPct,
				UpdatedAt:  now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// frontNameIndex maps front ids to names, archived fronts included so that
// historical rows still label correctly.
func frontNameIndex(ctx context.Context, fronts repository.FrontRepo) (map[string]string, error) {
	all, err := fronts.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, f := range all {
		names[f.ID] = f.Name
	}
	return names, nil
}

// planEntries converts joined day-plan rows into engine inputs.
func planEntries(rows []repository.PlanMinutesRow) []engine.PlanEntry {
	entries := make([]engine.PlanEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, engine.PlanEntry{
			FrontID:    r.FrontID,
			FrontName:  r.FrontName,
			Minutes:    r.Minutes,
			Nature:     r.Nature,
			HasProject: r.HasProject,
		})
	}
	return entries
}
