package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build the daily plan of time blocks",
	}

	cmd.AddCommand(newPlanBlockCmd(app))
	return cmd
}

func newPlanBlockCmd(app *App) *cobra.Command {
	var task, date, blockType string
	var minutes int

	cmd := &cobra.Command{
		Use:   "block",
		Short: "Add a time block to a day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			planDate := time.Now().UTC()
			if date != "" {
				parsed, err := period.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				planDate = parsed
			}

			item := &domain.DayPlanItem{
				PlanDate:  planDate,
				BlockType: domain.BlockType(blockType),
				Minutes:   minutes,
			}
			if item.BlockType == domain.BlockTask {
				taskID, err := resolveTaskID(ctx, app, task)
				if err != nil {
					return err
				}
				item.TaskID = &taskID
			}

			if err := app.Plans.AddBlock(ctx, item); err != nil {
				return err
			}
			fmt.Printf("Added %dmin %s block on %s\n", item.Minutes, item.BlockType,
				planDate.Format(period.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task the block is reserved for (task blocks only)")
	cmd.Flags().StringVar(&date, "date", "", "Plan date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&blockType, "type", "task", "Block type: task, rotina or pausa")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Block length in minutes")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}
