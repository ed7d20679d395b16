package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/period"
	"github.com/spf13/cobra"
)

func newDeepWorkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deepwork",
		Short: "Run exclusive deep-work sessions",
	}

	cmd.AddCommand(
		newDeepWorkStartCmd(app),
		newDeepWorkInterruptCmd(app),
		newDeepWorkBreakCmd(app),
		newDeepWorkStopCmd(app),
		newDeepWorkStatusCmd(app),
		newDeepWorkWatchCmd(app),
		newDeepWorkSummaryCmd(app),
	)

	return cmd
}

// activeSessionID resolves the single active session for commands that act
// on "the" session without an explicit id.
func activeSessionID(ctx context.Context, app *App) (string, error) {
	session, err := app.DeepWork.GetActive(ctx)
	if err != nil {
		return "", fmt.Errorf("no active deep-work session")
	}
	return session.ID, nil
}

func newDeepWorkStartCmd(app *App) *cobra.Command {
	var target, minimum int

	cmd := &cobra.Command{
		Use:   "start TASK",
		Short: "Start a deep-work session on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.StartDeepWorkRequest{TaskID: taskID}
			if cmd.Flags().Changed("target") {
				req.TargetMinutes = &target
			}
			if cmd.Flags().Changed("minimum") {
				req.MinimumBlockMinutes = &minimum
			}

			session, err := app.DeepWork.Start(ctx, req)
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, session.TaskID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSession(session, task.Title))
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Target minutes for the block")
	cmd.Flags().IntVar(&minimum, "minimum", 0, "Minimum block minutes")
	return cmd
}

func newDeepWorkInterruptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interrupt",
		Short: "Register an interruption on the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := activeSessionID(ctx, app)
			if err != nil {
				return err
			}
			session, err := app.DeepWork.RegisterInterruption(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Interruption registered (%d so far)\n", session.InterruptionCount)
			return nil
		},
	}
}

func newDeepWorkBreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "break",
		Short: "Register a break on the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := activeSessionID(ctx, app)
			if err != nil {
				return err
			}
			session, err := app.DeepWork.RegisterBreak(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Break registered (%d so far)\n", session.BreakCount)
			return nil
		},
	}
}

func newDeepWorkStopCmd(app *App) *cobra.Command {
	var switched bool
	var notes string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := activeSessionID(ctx, app)
			if err != nil {
				return err
			}
			session, err := app.DeepWork.Stop(ctx, contract.StopDeepWorkRequest{
				SessionID:    id,
				SwitchedTask: switched,
				Notes:        notes,
			})
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, session.TaskID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSession(session, task.Title))
			return nil
		},
	}

	cmd.Flags().BoolVar(&switched, "switched", false, "Ended because you switched tasks (breaks the block)")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	return cmd
}

func newDeepWorkStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, err := app.DeepWork.GetActive(ctx)
			if err != nil {
				fmt.Println("No active deep-work session.")
				return nil
			}
			task, err := app.Tasks.GetByID(ctx, session.TaskID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSession(session, task.Title))
			return nil
		},
	}
}

func newDeepWorkSummaryCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize deep work for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ref := time.Now().UTC()
			if week != "" {
				parsed, err := period.ParseDate(week)
				if err != nil {
					return fmt.Errorf("invalid week %q: %w", week, err)
				}
				ref = parsed
			}
			start := period.WeekStart(ref)

			resp, err := app.DeepWork.GetSummary(ctx, contract.DeepWorkSummaryRequest{
				Start: start,
				End:   period.WeekEnd(start),
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDeepWorkSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date inside the week YYYY-MM-DD (default current week)")
	return cmd
}
