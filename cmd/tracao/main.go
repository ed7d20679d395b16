package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmagro/tracao/internal/cli"
	"github.com/dmagro/tracao/internal/config"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/dmagro/tracao/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// DB path precedence: env var, config file, default ~/.tracao/tracao.db.
	dbPath := os.Getenv("TRACAO_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tracao", "tracao.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	frontRepo := repository.NewSQLiteFrontRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	planRepo := repository.NewSQLiteDayPlanRepo(database)
	sessionRepo := repository.NewSQLiteDeepWorkRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	stateRepo := repository.NewSQLiteGamificationRepo(database)
	allocationRepo := repository.NewSQLiteAllocationRepo(database)
	reviewRepo := repository.NewSQLiteReviewRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var logWriter io.Writer
	if cfg.LogUseCases || os.Getenv("TRACAO_LOG") == "1" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	app := &cli.App{
		Fronts:   service.NewFrontService(frontRepo),
		Projects: service.NewProjectService(projectRepo),
		Tasks:    service.NewTaskService(taskRepo, uow, cfg.Score, observer),
		Plans:    service.NewPlanService(planRepo),
		DeepWork: service.NewDeepWorkService(sessionRepo, taskRepo, frontRepo, uow,
			cfg.DeepWork.MinimumBlockMinutes, observer),
		Score: service.NewScoreService(stateRepo, uow, cfg.Score, observer),
		Portfolio: service.NewPortfolioService(frontRepo, projectRepo, taskRepo, uow,
			cfg.TractionWindowDays, observer),
		Allocation: service.NewAllocationService(allocationRepo, frontRepo, planRepo, uow, observer),
		Review: service.NewReviewService(frontRepo, projectRepo, taskRepo, planRepo,
			sessionRepo, eventRepo, allocationRepo, reviewRepo, uow,
			cfg.TractionWindowDays, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
