package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(f *fixture) ReviewService {
	return NewReviewService(
		f.fronts, f.projects, f.tasks, f.plans, f.sessions,
		f.events, f.allocations, f.reviews, f.uow, 0,
	)
}

// seedSession inserts a finished deep-work session of the given length.
func (f *fixture) seedSession(t *testing.T, taskID, frontID string, start time.Time, minutes int) {
	t.Helper()
	ended := start.Add(time.Duration(minutes) * time.Minute)
	require.NoError(t, f.sessions.Create(context.Background(), &domain.DeepWorkSession{
		ID:            uuid.New().String(),
		TaskID:        taskID,
		FrontID:       frontID,
		StartedAt:     start,
		EndedAt:       &ended,
		State:         domain.SessionCompleted,
		TargetMinutes: minutes,
		ActualMinutes: minutes,
	}))
}

func TestWeeklyReview_ComposesRollup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	weekStart := period.WeekStart(time.Now().UTC())
	inWeek := weekStart.Add(26 * time.Hour)

	empresa := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	saude := f.seedFront(t, "Saúde", domain.ModeManutencao)
	f.seedProject(t, empresa.ID, "Lançamento", testutil.WithLastActivity(inWeek))

	doneA := f.seedTask(t, empresa.ID, "Fechar proposta",
		testutil.WithTaskType(domain.TaskTypeA),
		testutil.WithNature(domain.NatureConstrucao),
		testutil.WithCompletedAt(inWeek))
	doneB := f.seedTask(t, saude.ID, "Treino", testutil.WithCompletedAt(inWeek))
	open := f.seedTask(t, empresa.ID, "Escrever artigo", testutil.WithTaskType(domain.TaskTypeA))

	f.seedPlanBlock(t, doneA.ID, inWeek, 120)
	f.seedPlanBlock(t, doneB.ID, inWeek, 60)
	f.seedSession(t, open.ID, empresa.ID, inWeek, 90)

	require.NoError(t, f.events.Create(ctx,
		testutil.NewTestEvent(doneB.ID, saude.ID, domain.EventDelayed, reasonPtr(domain.ReasonEnergia), inWeek)))
	require.NoError(t, f.events.Create(ctx,
		testutil.NewTestEvent(doneB.ID, saude.ID, domain.EventDelayed, reasonPtr(domain.ReasonEnergia), inWeek)))

	resp, err := newReviewService(f).GetReview(ctx, app.ReviewRequest{
		PeriodType:  domain.PeriodWeekly,
		PeriodStart: inWeek,
	})
	require.NoError(t, err)

	assert.Equal(t, weekStart, resp.PeriodStart, "start normalizes to Monday")
	assert.Equal(t, domain.FrontScopeAll, resp.FrontScope)

	assert.Equal(t, 180, resp.Minutes.TotalMinutes)
	assert.Equal(t, 120, resp.Minutes.ConstructionMinutes)
	assert.Equal(t, 60, resp.Minutes.OperationMinutes)
	assert.Equal(t, 60, resp.Minutes.DisconnectedMinutes, "the training task has no project")

	assert.Equal(t, 2, resp.CompletedTasks)
	assert.Equal(t, 1, resp.CompletedA)
	assert.Equal(t, 1, resp.DeepWorkCount)
	assert.Equal(t, 90, resp.DeepWorkMinutes)
	assert.InDelta(t, 1.5, resp.DeepWorkHours, 0.001)

	require.NotNil(t, resp.Bottleneck)
	assert.Equal(t, "energia", resp.Bottleneck.Key)
	assert.Equal(t, 100, resp.Bottleneck.Percent)

	require.Len(t, resp.Fronts, 2)
	assert.NotEmpty(t, resp.Draft.ActionItems)
	assert.Nil(t, resp.Journal)
}

func TestWeeklyReview_FrontScopeFilters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	weekStart := period.WeekStart(time.Now().UTC())
	inWeek := weekStart.Add(26 * time.Hour)

	empresa := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	saude := f.seedFront(t, "Saúde", domain.ModeManutencao)

	taskE := f.seedTask(t, empresa.ID, "Fechar proposta",
		testutil.WithTaskType(domain.TaskTypeA), testutil.WithCompletedAt(inWeek))
	taskS := f.seedTask(t, saude.ID, "Treino", testutil.WithCompletedAt(inWeek))
	f.seedPlanBlock(t, taskE.ID, inWeek, 100)
	f.seedPlanBlock(t, taskS.ID, inWeek, 50)

	resp, err := newReviewService(f).GetReview(ctx, app.ReviewRequest{
		PeriodType:  domain.PeriodWeekly,
		PeriodStart: inWeek,
		FrontScope:  empresa.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, resp.Minutes.TotalMinutes)
	assert.Equal(t, 1, resp.CompletedTasks)
	require.Len(t, resp.Fronts, 1)
	assert.Equal(t, "Empresa", resp.Fronts[0].FrontName)
}

func TestWeeklyReview_DraftFlagsWeakExecution(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	// A neglected front and zero execution should surface ghost, task-A and
	// deep-work actions with a low commitment suggestion.
	f.seedFront(t, "Empresa", domain.ModeAceleracao)

	resp, err := newReviewService(f).GetReview(ctx, app.ReviewRequest{
		PeriodType: domain.PeriodWeekly,
	})
	require.NoError(t, err)

	require.Len(t, resp.GhostFronts, 1)
	assert.Equal(t, domain.CommitmentBaixo, resp.Draft.Commitment)

	joined := strings.Join(resp.Draft.ActionItems, "\n")
	assert.Contains(t, joined, "fantasma")
	assert.Contains(t, joined, "tarefa A")
	assert.Contains(t, joined, "deep work")
}

func TestMonthlyReview_AveragesPlannedAcrossWeeks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)

	monthStart := period.MonthStart(time.Now().UTC())
	weeks := period.WeekStartsInMonth(monthStart)
	require.NotEmpty(t, weeks)

	// Plan only the first two weeks; unplanned weeks must not drag down the
	// average.
	require.NoError(t, f.allocations.Upsert(ctx, &domain.WeeklyAllocation{
		FrontID: front.ID, WeekStart: weeks[0], PlannedPct: 40, UpdatedAt: time.Now().UTC(),
	}))
	if len(weeks) > 1 {
		require.NoError(t, f.allocations.Upsert(ctx, &domain.WeeklyAllocation{
			FrontID: front.ID, WeekStart: weeks[1], PlannedPct: 60, UpdatedAt: time.Now().UTC(),
		}))
	}

	resp, err := newReviewService(f).GetReview(ctx, app.ReviewRequest{
		PeriodType:  domain.PeriodMonthly,
		PeriodStart: monthStart,
	})
	require.NoError(t, err)

	require.Len(t, resp.Allocation, 1)
	want := 40
	if len(weeks) > 1 {
		want = 50
	}
	assert.Equal(t, want, resp.Allocation[0].PlannedPct)
}

func TestSaveJournal_UpsertsAndFreezesSnapshot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.seedFront(t, "Empresa", domain.ModeAceleracao)
	svc := newReviewService(f)

	saved, err := svc.SaveJournal(ctx, app.SaveJournalRequest{
		PeriodType:      domain.PeriodWeekly,
		NextPriority:    "Fechar a proposta grande",
		CommitmentLevel: domain.CommitmentMedio,
		ActionItems:     []string{"agendar deep work", "revisar frentes"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ReviewSnapshot)

	// Same cell, new content: last writer wins.
	_, err = svc.SaveJournal(ctx, app.SaveJournalRequest{
		PeriodType:      domain.PeriodWeekly,
		NextPriority:    "Outra prioridade",
		CommitmentLevel: domain.CommitmentAlto,
	})
	require.NoError(t, err)

	resp, err := svc.GetReview(ctx, app.ReviewRequest{PeriodType: domain.PeriodWeekly})
	require.NoError(t, err)
	require.NotNil(t, resp.Journal)
	assert.Equal(t, "Outra prioridade", resp.Journal.NextPriority)
	assert.Equal(t, domain.CommitmentAlto, resp.Journal.CommitmentLevel)
}

func TestSaveJournal_TooManyActionItemsRejected(t *testing.T) {
	f := setup(t)
	svc := newReviewService(f)

	items := make([]string, domain.MaxActionItems+1)
	for i := range items {
		items[i] = "item"
	}
	_, err := svc.SaveJournal(context.Background(), app.SaveJournalRequest{
		PeriodType:      domain.PeriodWeekly,
		CommitmentLevel: domain.CommitmentBaixo,
		ActionItems:     items,
	})

	var revErr *app.ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, app.ReviewErrValidation, revErr.Code)
}

func TestReview_UnknownPeriodTypeRejected(t *testing.T) {
	f := setup(t)

	_, err := newReviewService(f).GetReview(context.Background(), app.ReviewRequest{
		PeriodType: domain.PeriodType("quarterly"),
	})

	var revErr *app.ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, app.ReviewErrValidation, revErr.Code)
}
