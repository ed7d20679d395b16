package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dmagro/tracao/internal/cli/formatter"
	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Weekly and monthly strategic reviews",
	}

	cmd.AddCommand(
		newReviewWeekCmd(app),
		newReviewMonthCmd(app),
		newReviewJournalCmd(app),
	)

	return cmd
}

func reviewRequest(periodType domain.PeriodType, date, front string) (contract.ReviewRequest, error) {
	req := contract.ReviewRequest{
		PeriodType:  periodType,
		PeriodStart: time.Now().UTC(),
		FrontScope:  front,
	}
	if date != "" {
		parsed, err := period.ParseDate(date)
		if err != nil {
			return req, fmt.Errorf("invalid date %q: %w", date, err)
		}
		req.PeriodStart = parsed
	}
	return req, nil
}

func newReviewWeekCmd(app *App) *cobra.Command {
	var date, front string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req, err := reviewRequest(domain.PeriodWeekly, date, "")
			if err != nil {
				return err
			}
			if front != "" {
				if req.FrontScope, err = resolveFrontID(ctx, app, front); err != nil {
					return err
				}
			}

			resp, err := app.Review.GetReview(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReview(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week YYYY-MM-DD (default current week)")
	cmd.Flags().StringVar(&front, "front", "", "Restrict the review to one front")
	return cmd
}

func newReviewMonthCmd(app *App) *cobra.Command {
	var date, front string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the monthly review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req, err := reviewRequest(domain.PeriodMonthly, date, "")
			if err != nil {
				return err
			}
			if front != "" {
				if req.FrontScope, err = resolveFrontID(ctx, app, front); err != nil {
					return err
				}
			}

			resp, err := app.Review.GetReview(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReview(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the month YYYY-MM-DD (default current month)")
	cmd.Flags().StringVar(&front, "front", "", "Restrict the review to one front")
	return cmd
}

func newReviewJournalCmd(app *App) *cobra.Command {
	var date, front string
	var monthly bool

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Fill the review journal, pre-seeded with the auto-draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("journal needs an interactive terminal")
			}

			ctx := context.Background()
			periodType := domain.PeriodWeekly
			if monthly {
				periodType = domain.PeriodMonthly
			}
			req, err := reviewRequest(periodType, date, "")
			if err != nil {
				return err
			}
			if front != "" {
				if req.FrontScope, err = resolveFrontID(ctx, app, front); err != nil {
					return err
				}
			}

			// The computed review seeds the form defaults.
			review, err := app.Review.GetReview(ctx, req)
			if err != nil {
				return err
			}

			save := contract.SaveJournalRequest{
				PeriodType:      periodType,
				PeriodStart:     req.PeriodStart,
				FrontScope:      req.FrontScope,
				CommitmentLevel: review.Draft.Commitment,
				ActionItems:     review.Draft.ActionItems,
			}
			if review.Journal != nil {
				save.NextPriority = review.Journal.NextPriority
				save.StrategicDecision = review.Journal.StrategicDecision
				save.CommitmentLevel = review.Journal.CommitmentLevel
				save.ActionItems = review.Journal.ActionItems
				save.Reflection = review.Journal.Reflection
			}
			actions := strings.Join(save.ActionItems, "\n")

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Próxima prioridade").
						Value(&save.NextPriority),
					huh.NewInput().
						Title("Decisão estratégica").
						Value(&save.StrategicDecision),
					huh.NewSelect[domain.CommitmentLevel]().
						Title("Comprometimento").
						Options(
							huh.NewOption("Alto", domain.CommitmentAlto),
							huh.NewOption("Médio", domain.CommitmentMedio),
							huh.NewOption("Baixo", domain.CommitmentBaixo),
						).
						Value(&save.CommitmentLevel),
					huh.NewText().
						Title("Ações (uma por linha)").
						Value(&actions),
					huh.NewText().
						Title("Reflexão").
						Value(&save.Reflection),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			save.ActionItems = nil
			for _, line := range strings.Split(actions, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					save.ActionItems = append(save.ActionItems, line)
				}
			}

			saved, err := app.Review.SaveJournal(ctx, save)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatJournal(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the period YYYY-MM-DD")
	cmd.Flags().StringVar(&front, "front", "", "Restrict the journal to one front")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "Journal the month instead of the week")
	return cmd
}
