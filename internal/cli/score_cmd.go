package cli

import (
	"context"
	"fmt"

	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Execution score, streak and debt",
	}

	cmd.AddCommand(
		newScoreShowCmd(app),
		newScoreApplyCmd(app),
	)

	return cmd
}

func newScoreShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current score",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Score.GetState(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScore(state, nil))
			return nil
		},
	}
}

func newScoreApplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply OUTCOME",
		Short: "Apply a raw outcome (on_time, late, postponed, not_confirmed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Score.ApplyResult(context.Background(), contract.ApplyResultRequest{
				Outcome: domain.Outcome(args[0]),
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScore(&resp.State, &resp.Delta))
			return nil
		},
	}
}
