package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and capture their outcomes",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskPostponeCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var front, project, taskType, nature string
	var multiBlock bool

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			frontID, err := resolveFrontID(ctx, app, front)
			if err != nil {
				return err
			}

			task := &domain.Task{
				FrontID:    frontID,
				Title:      args[0],
				Type:       domain.TaskType(strings.ToLower(taskType)),
				Nature:     domain.TaskNature(nature),
				MultiBlock: multiBlock,
			}
			if project != "" {
				task.ProjectID = &project
			}
			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Created task %s [%s]\n", task.Title, strings.ToUpper(string(task.Type)))
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front the task belongs to")
	cmd.Flags().StringVar(&project, "project", "", "Project ID to link the task to")
	cmd.Flags().StringVar(&taskType, "type", "b", "Impact type: a, b or c")
	cmd.Flags().StringVar(&nature, "nature", "construcao", "Execution nature: construcao or operacao")
	cmd.Flags().BoolVar(&multiBlock, "multi-block", false, "Task spans multiple deep-work blocks")
	_ = cmd.MarkFlagRequired("front")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var front string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks of a front",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			frontID, err := resolveFrontID(ctx, app, front)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListOpenByFront(ctx, frontID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No open tasks on this front.")
				return nil
			}

			headers := []string{"ID", "TITLE", "TYPE", "NATURE"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				title := formatter.Bold(t.Title)
				if t.MultiBlock {
					title += " " + formatter.Dim("(multi-bloco)")
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					title,
					strings.ToUpper(string(t.Type)),
					string(t.Nature),
				})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front to list")
	_ = cmd.MarkFlagRequired("front")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var late bool

	cmd := &cobra.Command{
		Use:   "done TASK",
		Short: "Complete a task and move the score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			outcome := domain.OutcomeOnTime
			if late {
				outcome = domain.OutcomeLate
			}
			resp, err := app.Tasks.Complete(ctx, contract.CompleteTaskRequest{TaskID: taskID, Outcome: outcome})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScore(&resp.State, &resp.Delta))
			return nil
		},
	}

	cmd.Flags().BoolVar(&late, "late", false, "Task was finished past its due date")
	return cmd
}

func newTaskPostponeCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "postpone TASK",
		Short: "Postpone a task, recording why it slipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.PostponeTaskRequest{TaskID: taskID}
			if reason != "" {
				r := domain.FailureReason(reason)
				req.Reason = &r
			}
			resp, err := app.Tasks.Postpone(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScore(&resp.State, &resp.Delta))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "",
		"Failure reason: energia, medo, distracao, dependencia, falta_clareza or falta_habilidade")
	return cmd
}
