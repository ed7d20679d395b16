package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
	"github.com/dmagro/tracao/internal/period"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/google/uuid"
)

type reviewService struct {
	fronts      repository.FrontRepo
	projects    repository.ProjectRepo
	tasks       repository.TaskRepo
	plans       repository.DayPlanRepo
	sessions    repository.DeepWorkRepo
	events      repository.EventRepo
	allocations repository.AllocationRepo
	reviews     repository.ReviewRepo
	uow         db.UnitOfWork
	windowDays  int
	observer    UseCaseObserver
}

func NewReviewService(
	fronts repository.FrontRepo,
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	plans repository.DayPlanRepo,
	sessions repository.DeepWorkRepo,
	events repository.EventRepo,
	allocations repository.AllocationRepo,
	reviews repository.ReviewRepo,
	uow db.UnitOfWork,
	windowDays int,
	observers ...UseCaseObserver,
) ReviewService {
	if windowDays <= 0 {
		windowDays = engine.TractionWindowDays
	}
	return &reviewService{
		fronts:      fronts,
		projects:    projects,
		tasks:       tasks,
		plans:       plans,
		sessions:    sessions,
		events:      events,
		allocations: allocations,
		reviews:     reviews,
		uow:         uow,
		windowDays:  windowDays,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// normalizePeriod snaps the start to the period boundary and returns the
// half-open range.
func normalizePeriod(pt domain.PeriodType, start time.Time) (time.Time, time.Time, error) {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	switch pt {
	case domain.PeriodWeekly:
		s := period.WeekStart(start)
		return s, period.WeekEnd(s), nil
	case domain.PeriodMonthly:
		s := period.MonthStart(start)
		return s, period.MonthEnd(s), nil
	default:
		return time.Time{}, time.Time{}, &app.ReviewError{
			Code:    app.ReviewErrValidation,
			Message: fmt.Sprintf("unknown period type %q", pt),
		}
	}
}

func normalizeScope(scope string) string {
	if scope == "" {
		return domain.FrontScopeAll
	}
	return scope
}

func (s *reviewService) GetReview(ctx context.Context, req app.ReviewRequest) (resp *app.ReviewResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"period_type": string(req.PeriodType)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "review-get",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	start, end, err := normalizePeriod(req.PeriodType, req.PeriodStart)
	if err != nil {
		return nil, err
	}
	scope := normalizeScope(req.FrontScope)
	frontFilter := ""
	if scope != domain.FrontScopeAll {
		if _, err := s.fronts.GetByID(ctx, scope); err != nil {
			return nil, err
		}
		frontFilter = scope
	}
	fields["period_start"] = start.Format(period.DateLayout)
	fields["scope"] = scope

	resp = &app.ReviewResponse{
		PeriodType:  req.PeriodType,
		PeriodStart: start,
		PeriodEnd:   end,
		FrontScope:  scope,
	}

	// Minutes rollup from day plans.
	rows, err := s.plans.ListTaskMinutesBetween(ctx, start, end, frontFilter)
	if err != nil {
		return nil, err
	}
	resp.Minutes = engine.CollectFrontMinutes(planEntries(rows))

	// Planned vs actual allocation.
	planned, err := s.plannedShares(ctx, req.PeriodType, start, end)
	if err != nil {
		return nil, err
	}
	if frontFilter != "" {
		filtered := planned[:0]
		for _, p := range planned {
			if p.FrontID == frontFilter {
				filtered = append(filtered, p)
			}
		}
		planned = filtered
	}
	resp.Allocation = engine.BuildAllocationRows(planned, resp.Minutes)

	// Completion counts.
	completed, err := s.tasks.ListCompletedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, t := range completed {
		if frontFilter != "" && t.FrontID != frontFilter {
			continue
		}
		resp.CompletedTasks++
		if t.Type == domain.TaskTypeA {
			resp.CompletedA++
		}
	}

	// Deep-work totals.
	sessions, err := s.sessions.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if frontFilter != "" && sess.FrontID != frontFilter {
			continue
		}
		resp.DeepWorkCount++
		resp.DeepWorkMinutes += sess.ActualMinutes
	}
	resp.DeepWorkHours = float64(resp.DeepWorkMinutes) / 60

	// Per-front health and ghost detection.
	views, err := buildFrontViews(ctx, s.fronts, s.projects, s.tasks, start, end, s.windowDays)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if frontFilter != "" && v.FrontID != frontFilter {
			continue
		}
		resp.Fronts = append(resp.Fronts, v)
		if v.IsGhost {
			resp.GhostFronts = append(resp.GhostFronts, v.FrontName)
		}
	}

	// Dominant bottleneck over the period's delayed/failed events.
	events, err := s.events.ListBetween(ctx, start, end, frontFilter)
	if err != nil {
		return nil, err
	}
	samples := make([]engine.EventSample, 0, len(events))
	for _, e := range events {
		samples = append(samples, engine.EventSample{Type: e.Type, FailureReason: e.FailureReason})
	}
	resp.Bottleneck = engine.DominantBottleneck(samples)

	// Auto-draft for the journal.
	top, bottom := resp.Minutes.MostAndLeastResourced()
	resp.Draft = engine.BuildDraft(engine.DraftInput{
		CompletedA:    resp.CompletedA,
		DeepWorkHours: resp.DeepWorkHours,
		TopFront:      top,
		BottomFront:   bottom,
		GhostFronts:   len(resp.GhostFronts),
		Bottleneck:    resp.Bottleneck,
	})

	journal, err := s.reviews.Get(ctx, req.PeriodType, start, scope)
	if err == nil {
		resp.Journal = journal
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return resp, nil
}

// plannedShares loads the planned allocation for the period. Weekly reviews
// read the week's row set directly; monthly reviews average each front across
// the Mondays falling inside the month, skipping weeks without a plan.
func (s *reviewService) plannedShares(ctx context.Context, pt domain.PeriodType, start, end time.Time) ([]engine.PlannedShare, error) {
	names, err := frontNameIndex(ctx, s.fronts)
	if err != nil {
		return nil, err
	}

	if pt == domain.PeriodWeekly {
		stored, err := s.allocations.ListByWeek(ctx, start)
		if err != nil {
			return nil, err
		}
		shares := make([]engine.PlannedShare, 0, len(stored))
		for _, a := range stored {
			shares = append(shares, engine.PlannedShare{
				FrontID:   a.FrontID,
				FrontName: names[a.FrontID],
				Pct:       a.PlannedPct,
			})
		}
		return shares, nil
	}

	stored, err := s.allocations.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	weekly := make(map[string][]int)
	var order []string
	for _, a := range stored {
		if _, seen := weekly[a.FrontID]; !seen {
			order = append(order, a.FrontID)
		}
		weekly[a.FrontID] = append(weekly[a.FrontID], a.PlannedPct)
	}

	shares := make([]engine.PlannedShare, 0, len(order))
	for _, frontID := range order {
		shares = append(shares, engine.PlannedShare{
			FrontID:   frontID,
			FrontName: names[frontID],
			Pct:       engine.AveragePlannedPct(weekly[frontID]),
		})
	}
	return shares, nil
}

func (s *reviewService) SaveJournal(ctx context.Context, req app.SaveJournalRequest) (review *domain.StrategicReview, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"period_type": string(req.PeriodType)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "review-save-journal",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	start, _, err := normalizePeriod(req.PeriodType, req.PeriodStart)
	if err != nil {
		return nil, err
	}
	scope := normalizeScope(req.FrontScope)

	review = &domain.StrategicReview{
		ID:                uuid.New().String(),
		PeriodType:        req.PeriodType,
		PeriodStart:       start,
		FrontScope:        scope,
		NextPriority:      req.NextPriority,
		StrategicDecision: req.StrategicDecision,
		CommitmentLevel:   req.CommitmentLevel,
		ActionItems:       req.ActionItems,
		Reflection:        req.Reflection,
	}
	if err := review.Validate(); err != nil {
		return nil, &app.ReviewError{Code: app.ReviewErrValidation, Message: err.Error()}
	}

	// Freeze the computed rollup alongside the journal so the entry still
	// reads coherently after the underlying data changes.
	computed, err := s.GetReview(ctx, app.ReviewRequest{
		PeriodType:  req.PeriodType,
		PeriodStart: start,
		FrontScope:  scope,
	})
	if err != nil {
		return nil, err
	}
	computed.Journal = nil
	snapshot, err := json.Marshal(computed)
	if err != nil {
		return nil, err
	}
	review.ReviewSnapshot = string(snapshot)

	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
