package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllocationService(f *fixture) AllocationService {
	return NewAllocationService(f.allocations, f.fronts, f.plans, f.uow)
}

func TestAllocationSetWeekly_SumAbove100Rejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	b := f.seedFront(t, "Saúde", domain.ModeManutencao)

	err := newAllocationService(f).SetWeekly(ctx, app.SetWeeklyAllocationRequest{
		Allocations: []app.AllocationInput{
			{FrontID: a.ID, PlannedPct: 70},
			{FrontID: b.ID, PlannedPct: 40},
		},
	})

	var allocErr *app.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, app.AllocationErrInvalidSum, allocErr.Code)
}

func TestAllocationSetWeekly_PctOutOfRangeRejected(t *testing.T) {
	f := setup(t)
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)

	err := newAllocationService(f).SetWeekly(context.Background(), app.SetWeeklyAllocationRequest{
		Allocations: []app.AllocationInput{{FrontID: front.ID, PlannedPct: 120}},
	})

	var allocErr *app.AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, app.AllocationErrValidation, allocErr.Code)
}

func TestAllocationSetWeekly_UpsertsLastWriterWins(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	svc := newAllocationService(f)

	require.NoError(t, svc.SetWeekly(ctx, app.SetWeeklyAllocationRequest{
		Allocations: []app.AllocationInput{{FrontID: front.ID, PlannedPct: 40}},
	}))
	require.NoError(t, svc.SetWeekly(ctx, app.SetWeeklyAllocationRequest{
		Allocations: []app.AllocationInput{{FrontID: front.ID, PlannedPct: 60}},
	}))

	resp, err := svc.GetWeekly(ctx, app.GetWeeklyAllocationRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 60, resp.Rows[0].PlannedPct)
}

func TestAllocationGetWeekly_ComparesPlannedWithPlanMinutes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empresa := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	saude := f.seedFront(t, "Saúde", domain.ModeManutencao)

	weekStart := period.WeekStart(time.Now().UTC())

	taskE := f.seedTask(t, empresa.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))
	taskS := f.seedTask(t, saude.ID, "Treino")
	f.seedPlanBlock(t, taskE.ID, weekStart, 90)
	f.seedPlanBlock(t, taskS.ID, weekStart.AddDate(0, 0, 1), 30)

	svc := newAllocationService(f)
	require.NoError(t, svc.SetWeekly(ctx, app.SetWeeklyAllocationRequest{
		WeekStart: weekStart,
		Allocations: []app.AllocationInput{
			{FrontID: empresa.ID, PlannedPct: 50},
			{FrontID: saude.ID, PlannedPct: 50},
		},
	}))

	resp, err := svc.GetWeekly(ctx, app.GetWeeklyAllocationRequest{WeekStart: weekStart})
	require.NoError(t, err)
	assert.Equal(t, 120, resp.TotalMinutes)
	require.Len(t, resp.Rows, 2)

	byFront := map[string]int{}
	for i, row := range resp.Rows {
		byFront[row.FrontID] = i
	}
	e := resp.Rows[byFront[empresa.ID]]
	assert.Equal(t, 75, e.ActualPct)
	assert.Equal(t, 25, e.DeltaPct)
	s := resp.Rows[byFront[saude.ID]]
	assert.Equal(t, 25, s.ActualPct)
	assert.Equal(t, -25, s.DeltaPct)
}

func TestAllocationGetWeekly_EmptyWeek(t *testing.T) {
	f := setup(t)

	resp, err := newAllocationService(f).GetWeekly(context.Background(), app.GetWeeklyAllocationRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalMinutes)
	assert.Empty(t, resp.Rows)
}
