package service

import (
	"context"
	"testing"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeepWorkService(f *fixture) DeepWorkService {
	return NewDeepWorkService(f.sessions, f.tasks, f.fronts, f.uow, 0)
}

func TestDeepWorkStart_TaskARuns(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionActive, session.State)
	assert.Equal(t, task.ID, session.TaskID)
	assert.Equal(t, front.ID, session.FrontID)
	assert.Equal(t, app.DefaultMinimumBlockMinutes, session.TargetMinutes)
}

func TestDeepWorkStart_MultiBlockTaskBRuns(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Migrar banco",
		testutil.WithTaskType(domain.TaskTypeB), testutil.WithMultiBlock())

	svc := newDeepWorkService(f)
	_, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	assert.NoError(t, err)
}

func TestDeepWorkStart_IneligibleTaskRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Responder emails", testutil.WithTaskType(domain.TaskTypeC))

	svc := newDeepWorkService(f)
	_, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.Error(t, err)

	var dwErr *app.DeepWorkError
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrValidation, dwErr.Code)
}

func TestDeepWorkStart_DoneTaskRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta",
		testutil.WithTaskType(domain.TaskTypeA), testutil.WithTaskStatus(domain.TaskFeito))

	svc := newDeepWorkService(f)
	_, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})

	var dwErr *app.DeepWorkError
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrInvalidState, dwErr.Code)
}

func TestDeepWorkStart_SecondActiveSessionConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	first := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))
	second := f.seedTask(t, front.ID, "Escrever artigo", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	_, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: first.ID})
	require.NoError(t, err)

	_, err = svc.Start(ctx, app.StartDeepWorkRequest{TaskID: second.ID})
	require.Error(t, err)

	var dwErr *app.DeepWorkError
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrActiveSession, dwErr.Code)
	assert.Contains(t, dwErr.Message, "Fechar proposta")
}

func TestDeepWorkStart_TargetBelowMinimumRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	_, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID, TargetMinutes: intPtr(20)})

	var dwErr *app.DeepWorkError
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrValidation, dwErr.Code)
}

func TestDeepWorkStart_MinimumFloorApplies(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	// A caller-supplied minimum of 5 is clamped to the floor; a 20 minute
	// target then clears it.
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{
		TaskID:              task.ID,
		TargetMinutes:       intPtr(20),
		MinimumBlockMinutes: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, session.TargetMinutes)
}

func TestDeepWorkStop_CompletesAndTouchesProject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	project := f.seedProject(t, front.ID, "Lançamento")
	task := f.seedTask(t, front.ID, "Fechar proposta",
		testutil.WithTaskType(domain.TaskTypeA), testutil.WithTaskProject(project.ID))

	svc := newDeepWorkService(f)
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.NoError(t, err)

	stopped, err := svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: session.ID, Notes: "bom ritmo"})
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, stopped.State)
	assert.NotNil(t, stopped.EndedAt)
	assert.Equal(t, "bom ritmo", stopped.Notes)

	updated, err := f.projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastActivityAt)
}

func TestDeepWorkStop_SwitchedTaskBreaksSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.NoError(t, err)

	stopped, err := svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: session.ID, SwitchedTask: true})
	require.NoError(t, err)
	assert.Equal(t, domain.SessionBroken, stopped.State)
	assert.Equal(t, 1, stopped.BreakCount)
}

func TestDeepWorkStop_SecondStopIsNoop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.NoError(t, err)

	first, err := svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: session.ID})
	require.NoError(t, err)

	second, err := svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: session.ID, SwitchedTask: true})
	require.NoError(t, err)
	assert.Equal(t, first.State, second.State, "a second stop must not flip the final state")
	assert.Equal(t, first.BreakCount, second.BreakCount)
}

func TestDeepWorkCounters_RejectedAfterStop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	task := f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	svc := newDeepWorkService(f)
	session, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: task.ID})
	require.NoError(t, err)

	updated, err := svc.RegisterInterruption(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.InterruptionCount)

	_, err = svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: session.ID})
	require.NoError(t, err)

	_, err = svc.RegisterInterruption(ctx, session.ID)
	var dwErr *app.DeepWorkError
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrInvalidState, dwErr.Code)

	_, err = svc.RegisterBreak(ctx, session.ID)
	require.ErrorAs(t, err, &dwErr)
	assert.Equal(t, app.DeepWorkErrInvalidState, dwErr.Code)
}

func TestDeepWorkSummary_AggregatesByFront(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empresa := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	saude := f.seedFront(t, "Saúde", domain.ModeManutencao)
	taskA := f.seedTask(t, empresa.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))
	taskB := f.seedTask(t, saude.ID, "Plano de treino",
		testutil.WithTaskType(domain.TaskTypeB), testutil.WithMultiBlock())

	svc := newDeepWorkService(f)

	s1, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: taskA.ID})
	require.NoError(t, err)
	_, err = svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: s1.ID})
	require.NoError(t, err)

	s2, err := svc.Start(ctx, app.StartDeepWorkRequest{TaskID: taskB.ID})
	require.NoError(t, err)
	_, err = svc.Stop(ctx, app.StopDeepWorkRequest{SessionID: s2.ID, SwitchedTask: true})
	require.NoError(t, err)

	now := s1.StartedAt
	resp, err := svc.GetSummary(ctx, app.DeepWorkSummaryRequest{
		Start: now.AddDate(0, 0, -1),
		End:   now.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Sessions)
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, 1, resp.Broken)
	require.Len(t, resp.ByFront, 2)
	assert.Equal(t, "Empresa", resp.ByFront[0].FrontName)
	assert.Nil(t, resp.Active)
}
