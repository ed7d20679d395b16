package formatter

import (
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
)

// FormatSession renders one deep-work session card.
func FormatSession(s *domain.DeepWorkSession, taskTitle string) string {
	var b strings.Builder

	if taskTitle != "" {
		b.WriteString(Bold(taskTitle) + "  " + TruncID(s.ID) + "\n")
	}
	b.WriteString(SessionStatePill(s.State) + "\n\n")
	b.WriteString(fmt.Sprintf("Alvo:          %s\n", FormatMinutes(s.TargetMinutes)))
	if s.Terminal() {
		b.WriteString(fmt.Sprintf("Realizado:     %s\n", FormatMinutes(s.ActualMinutes)))
	}
	b.WriteString(fmt.Sprintf("Interrupções:  %d\n", s.InterruptionCount))
	b.WriteString(fmt.Sprintf("Pausas:        %d\n", s.BreakCount))
	if s.Notes != "" {
		b.WriteString("\n" + Dim(s.Notes) + "\n")
	}

	return RenderBox("Deep Work", b.String())
}

// FormatDeepWorkSummary renders the aggregate over a date range.
func FormatDeepWorkSummary(resp *contract.DeepWorkSummaryResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Sessões: %s  (%s completas, %s quebradas)\n",
		Bold(fmt.Sprintf("%d", resp.Sessions)),
		StyleGreen.Render(fmt.Sprintf("%d", resp.Completed)),
		StyleRed.Render(fmt.Sprintf("%d", resp.Broken)),
	))
	b.WriteString(fmt.Sprintf("Tempo focado: %s\n", Bold(FormatMinutes(resp.TotalMinutes))))
	b.WriteString(fmt.Sprintf("Interrupções: %d   Pausas: %d\n", resp.Interruptions, resp.Breaks))

	if len(resp.ByFront) > 0 {
		b.WriteString("\n")
		headers := []string{"FRENTE", "SESSÕES", "TEMPO"}
		rows := make([][]string, 0, len(resp.ByFront))
		for _, f := range resp.ByFront {
			rows = append(rows, []string{
				Bold(f.FrontName),
				fmt.Sprintf("%d", f.Sessions),
				FormatMinutes(f.Minutes),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if resp.Active != nil {
		b.WriteString("\n" + StyleGreen.Render("● sessão ativa agora") + "  " + TruncID(resp.Active.ID) + "\n")
	}

	return RenderBox(
		fmt.Sprintf("Deep Work — %s a %s", resp.Start.Format("02/01"), resp.End.Format("02/01")),
		b.String(),
	)
}
