package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/config"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/dmagro/tracao/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixture bundles the repos and unit of work every service test needs.
type fixture struct {
	fronts      *repository.SQLiteFrontRepo
	projects    *repository.SQLiteProjectRepo
	tasks       *repository.SQLiteTaskRepo
	plans       *repository.SQLiteDayPlanRepo
	sessions    *repository.SQLiteDeepWorkRepo
	events      *repository.SQLiteEventRepo
	state       *repository.SQLiteGamificationRepo
	allocations *repository.SQLiteAllocationRepo
	reviews     *repository.SQLiteReviewRepo
	uow         db.UnitOfWork
	deltas      config.ScoreConfig
}

func setup(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		fronts:      repository.NewSQLiteFrontRepo(database),
		projects:    repository.NewSQLiteProjectRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database),
		plans:       repository.NewSQLiteDayPlanRepo(database),
		sessions:    repository.NewSQLiteDeepWorkRepo(database),
		events:      repository.NewSQLiteEventRepo(database),
		state:       repository.NewSQLiteGamificationRepo(database),
		allocations: repository.NewSQLiteAllocationRepo(database),
		reviews:     repository.NewSQLiteReviewRepo(database),
		uow:         testutil.NewTestUoW(database),
		deltas:      config.Default().Score,
	}
}

// seedFront creates a front with an optional project and returns both.
func (f *fixture) seedFront(t *testing.T, name string, mode domain.FrontMode) *domain.Front {
	t.Helper()
	front := testutil.NewTestFront(name, testutil.WithFrontMode(mode))
	require.NoError(t, f.fronts.Create(context.Background(), front))
	return front
}

func (f *fixture) seedProject(t *testing.T, frontID, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	project := testutil.NewTestProject(frontID, name, opts...)
	require.NoError(t, f.projects.Create(context.Background(), project))
	return project
}

func (f *fixture) seedTask(t *testing.T, frontID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(frontID, title, opts...)
	require.NoError(t, f.tasks.Create(context.Background(), task))
	return task
}

func (f *fixture) seedPlanBlock(t *testing.T, taskID string, date time.Time, minutes int) {
	t.Helper()
	require.NoError(t, f.plans.Create(context.Background(), testutil.NewTestPlanItem(taskID, date, minutes)))
}

func intPtr(v int) *int { return &v }

func reasonPtr(r domain.FailureReason) *domain.FailureReason { return &r }
