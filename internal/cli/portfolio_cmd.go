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

func newPortfolioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Front health dashboard and ghost detection",
	}

	cmd.AddCommand(
		newPortfolioShowCmd(app),
		newPortfolioResolveCmd(app),
	)

	return cmd
}

func newPortfolioShowCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show per-front health",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.PortfolioRequest{}
			if week != "" {
				parsed, err := period.ParseDate(week)
				if err != nil {
					return fmt.Errorf("invalid week %q: %w", week, err)
				}
				req.WeekStart = parsed
			} else {
				req.WeekStart = time.Now().UTC()
			}

			resp, err := app.Portfolio.GetPortfolio(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPortfolio(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date inside the week YYYY-MM-DD (default current week)")
	return cmd
}

func newPortfolioResolveCmd(app *App) *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "resolve FRONT",
		Short: "Resolve a ghost front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			frontID, err := resolveFrontID(ctx, app, args[0])
			if err != nil {
				return err
			}

			front, err := app.Portfolio.ResolveGhostFront(ctx, contract.ResolveGhostRequest{
				FrontID: frontID,
				Action:  contract.GhostAction(action),
			})
			if err != nil {
				return err
			}
			if front.ArchivedAt != nil {
				fmt.Printf("Front %s archived\n", front.Name)
				return nil
			}
			fmt.Printf("Front %s is now in %s mode\n", front.Name, front.Mode)
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "reactivate, standby or archive")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}
