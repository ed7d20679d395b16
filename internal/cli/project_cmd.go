package cli

import (
	"context"
	"fmt"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects inside fronts",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectDoneCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var front string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project under a front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			frontID, err := resolveFrontID(ctx, app, front)
			if err != nil {
				return err
			}
			p := &domain.Project{FrontID: frontID, Name: args[0]}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Created project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front the project belongs to")
	_ = cmd.MarkFlagRequired("front")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var front string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active projects of a front",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			frontID, err := resolveFrontID(ctx, app, front)
			if err != nil {
				return err
			}
			projects, err := app.Projects.ListActiveByFront(ctx, frontID)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No active projects on this front.")
				return nil
			}

			headers := []string{"ID", "NAME", "LAST ACTIVITY"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				last := formatter.Dim("nunca")
				if p.LastActivityAt != nil {
					last = p.LastActivityAt.Format("02/01/2006")
				}
				rows = append(rows, []string{formatter.TruncID(p.ID), formatter.Bold(p.Name), last})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front to list")
	_ = cmd.MarkFlagRequired("front")
	return cmd
}

func newProjectDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done PROJECT_ID",
		Short: "Mark a project as concluded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			p.Status = domain.ProjectConcluido
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Project %s concluded\n", p.Name)
			return nil
		},
	}
}
