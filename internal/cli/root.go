package cli

import (
	"github.com/dmagro/tracao/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Fronts     service.FrontService
	Projects   service.ProjectService
	Tasks      service.TaskService
	Plans      service.PlanService
	DeepWork   service.DeepWorkService
	Score      service.ScoreService
	Portfolio  service.PortfolioService
	Allocation service.AllocationService
	Review     service.ReviewService

	// IsInteractive gates the live timer and the journal form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tracao" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracao",
		Short: "Strategic execution tracker for fronts, deep work and weekly reviews",
	}

	root.AddCommand(
		newFrontCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newPlanCmd(app),
		newDeepWorkCmd(app),
		newScoreCmd(app),
		newPortfolioCmd(app),
		newAllocCmd(app),
		newReviewCmd(app),
	)

	return root
}
