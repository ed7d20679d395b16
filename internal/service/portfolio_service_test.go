package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioService(f *fixture) PortfolioService {
	return NewPortfolioService(f.fronts, f.projects, f.tasks, f.uow, 0)
}

func findFront(t *testing.T, resp *app.PortfolioResponse, frontID string) app.FrontPortfolioView {
	t.Helper()
	for _, v := range resp.Fronts {
		if v.FrontID == frontID {
			return v
		}
	}
	t.Fatalf("front %s not in portfolio", frontID)
	return app.FrontPortfolioView{}
}

func TestPortfolio_ClassifiesForte(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	f.seedProject(t, front.ID, "Lançamento", testutil.WithLastActivity(time.Now().UTC()))
	f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	resp, err := newPortfolioService(f).GetPortfolio(ctx, app.PortfolioRequest{})
	require.NoError(t, err)

	view := findFront(t, resp, front.ID)
	assert.Equal(t, domain.HealthForte, view.Health.Status)
	assert.False(t, view.IsGhost)
}

func TestPortfolio_ClassifiesEstavelOnTractionAlone(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	f.seedProject(t, front.ID, "Lançamento", testutil.WithLastActivity(time.Now().UTC()))

	resp, err := newPortfolioService(f).GetPortfolio(ctx, app.PortfolioRequest{})
	require.NoError(t, err)

	view := findFront(t, resp, front.ID)
	assert.Equal(t, domain.HealthEstavel, view.Health.Status)
}

func TestPortfolio_ClassifiesAtencaoOnStalledProjects(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	// Active project, but last activity far outside the traction window.
	f.seedProject(t, front.ID, "Lançamento",
		testutil.WithLastActivity(time.Now().UTC().AddDate(0, 0, -60)))

	resp, err := newPortfolioService(f).GetPortfolio(ctx, app.PortfolioRequest{})
	require.NoError(t, err)

	view := findFront(t, resp, front.ID)
	assert.Equal(t, domain.HealthAtencao, view.Health.Status)
	assert.True(t, view.IsGhost, "stalled projects read atencao but still count as ghost")
}

func TestPortfolio_ClassifiesNegligenciadaAndStandby(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empty := f.seedFront(t, "Estudos", domain.ModeManutencao)
	parked := f.seedFront(t, "Hobby", domain.ModeStandby)

	resp, err := newPortfolioService(f).GetPortfolio(ctx, app.PortfolioRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.HealthNegligenciada, findFront(t, resp, empty.ID).Health.Status)

	parkedView := findFront(t, resp, parked.ID)
	assert.Equal(t, domain.HealthStandby, parkedView.Health.Status)
	assert.False(t, parkedView.IsGhost, "deliberate standby is never a ghost")

	assert.Equal(t, 1, resp.GhostCount)
}

func TestPortfolio_OpenTaskAClearsGhost(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	resp, err := newPortfolioService(f).GetPortfolio(ctx, app.PortfolioRequest{})
	require.NoError(t, err)

	view := findFront(t, resp, front.ID)
	assert.False(t, view.IsGhost)
	assert.Equal(t, domain.HealthEstavel, view.Health.Status)
}

func TestResolveGhost_Standby(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)

	resolved, err := newPortfolioService(f).ResolveGhostFront(ctx, app.ResolveGhostRequest{
		FrontID: front.ID,
		Action:  app.GhostActionStandby,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeStandby, resolved.Mode)
}

func TestResolveGhost_Reactivate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeManutencao)

	resolved, err := newPortfolioService(f).ResolveGhostFront(ctx, app.ResolveGhostRequest{
		FrontID: front.ID,
		Action:  app.GhostActionReactivate,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAceleracao, resolved.Mode)
}

func TestResolveGhost_Archive(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeManutencao)

	_, err := newPortfolioService(f).ResolveGhostFront(ctx, app.ResolveGhostRequest{
		FrontID: front.ID,
		Action:  app.GhostActionArchive,
	})
	require.NoError(t, err)

	listed, err := f.fronts.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, listed, "archived fronts leave the active list")
}

func TestResolveGhost_NonGhostRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)
	f.seedTask(t, front.ID, "Fechar proposta", testutil.WithTaskType(domain.TaskTypeA))

	_, err := newPortfolioService(f).ResolveGhostFront(ctx, app.ResolveGhostRequest{
		FrontID: front.ID,
		Action:  app.GhostActionStandby,
	})

	var pErr *app.PortfolioError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, app.PortfolioErrNotGhost, pErr.Code)
}

func TestResolveGhost_UnknownActionRejected(t *testing.T) {
	f := setup(t)
	front := f.seedFront(t, "Empresa", domain.ModeAceleracao)

	_, err := newPortfolioService(f).ResolveGhostFront(context.Background(), app.ResolveGhostRequest{
		FrontID: front.ID,
		Action:  app.GhostAction("delete"),
	})

	var pErr *app.PortfolioError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, app.PortfolioErrInvalidAction, pErr.Code)
}
