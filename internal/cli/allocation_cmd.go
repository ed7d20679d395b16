package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/period"
	"github.com/spf13/cobra"
)

func newAllocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Weekly attention allocation per front",
	}

	cmd.AddCommand(
		newAllocShowCmd(app),
		newAllocSetCmd(app),
	)

	return cmd
}

func parseWeekFlag(week string) (time.Time, error) {
	if week == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := period.ParseDate(week)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week %q: %w", week, err)
	}
	return parsed, nil
}

func newAllocShowCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show planned versus actual allocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			resp, err := app.Allocation.GetWeekly(context.Background(), contract.GetWeeklyAllocationRequest{
				WeekStart: weekStart,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAllocation(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date inside the week YYYY-MM-DD (default current week)")
	return cmd
}

func newAllocSetCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "set FRONT=PCT [FRONT=PCT ...]",
		Short: "Set planned percentages for a week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			req := contract.SetWeeklyAllocationRequest{WeekStart: weekStart}
			for _, arg := range args {
				name, pctStr, found := strings.Cut(arg, "=")
				if !found {
					return fmt.Errorf("expected FRONT=PCT, got %q", arg)
				}
				frontID, err := resolveFrontID(ctx, app, name)
				if err != nil {
					return err
				}
				pct, err := strconv.Atoi(pctStr)
				if err != nil {
					return fmt.Errorf("invalid percentage %q: %w", pctStr, err)
				}
				req.Allocations = append(req.Allocations, contract.AllocationInput{
					FrontID:    frontID,
					PlannedPct: pct,
				})
			}

			if err := app.Allocation.SetWeekly(ctx, req); err != nil {
				return err
			}

			resp, err := app.Allocation.GetWeekly(ctx, contract.GetWeeklyAllocationRequest{WeekStart: weekStart})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAllocation(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date inside the week YYYY-MM-DD (default current week)")
	return cmd
}
