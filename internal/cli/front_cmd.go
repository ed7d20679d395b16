package cli

import (
	"context"
	"fmt"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/spf13/cobra"
)

func newFrontCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "front",
		Short: "Manage fronts (companies, life areas)",
	}

	cmd.AddCommand(
		newFrontAddCmd(app),
		newFrontListCmd(app),
		newFrontModeCmd(app),
		newFrontArchiveCmd(app),
	)

	return cmd
}

func newFrontAddCmd(app *App) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &domain.Front{
				Name: args[0],
				Mode: domain.FrontMode(mode),
			}
			if err := app.Fronts.Create(context.Background(), f); err != nil {
				return err
			}
			fmt.Printf("Created front %s (%s)\n", f.Name, f.Mode)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "manutencao", "Front mode: aceleracao, manutencao or standby")
	return cmd
}

func newFrontListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fronts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fronts, err := app.Fronts.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(fronts) == 0 {
				fmt.Println("No fronts yet. Create one with 'tracao front add'.")
				return nil
			}

			headers := []string{"ID", "NAME", "MODE"}
			rows := make([][]string, 0, len(fronts))
			for _, f := range fronts {
				mode := formatter.ModeBadge(f.Mode)
				if f.ArchivedAt != nil {
					mode = formatter.Dim("arquivada")
				}
				rows = append(rows, []string{formatter.TruncID(f.ID), formatter.Bold(f.Name), mode})
			}
			fmt.Println(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived fronts")
	return cmd
}

func newFrontModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mode FRONT MODE",
		Short: "Change a front's mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveFrontID(ctx, app, args[0])
			if err != nil {
				return err
			}
			f, err := app.Fronts.SetMode(ctx, id, domain.FrontMode(args[1]))
			if err != nil {
				return err
			}
			fmt.Printf("Front %s is now in %s mode\n", f.Name, f.Mode)
			return nil
		},
	}
}

func newFrontArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive FRONT",
		Short: "Archive a front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveFrontID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Fronts.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Front archived")
			return nil
		},
	}
}
