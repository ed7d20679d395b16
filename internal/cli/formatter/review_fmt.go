package formatter

import (
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
)

// FormatReview renders the full weekly or monthly review: minutes rollup,
// allocation comparison, execution counts, health, bottleneck and the draft.
func FormatReview(resp *contract.ReviewResponse) string {
	var b strings.Builder

	b.WriteString(Header("Tempo"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total planejado:   %s\n", Bold(FormatMinutes(resp.Minutes.TotalMinutes))))
	b.WriteString(fmt.Sprintf("Construção:        %s   Operação: %s\n",
		FormatMinutes(resp.Minutes.ConstructionMinutes),
		FormatMinutes(resp.Minutes.OperationMinutes)))
	if resp.Minutes.DisconnectedMinutes > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Desconectado:      %s (tarefas sem projeto)",
			FormatMinutes(resp.Minutes.DisconnectedMinutes))) + "\n")
	}

	if len(resp.Allocation) > 0 {
		b.WriteString("\n" + Header("Alocação") + "\n")
		headers := []string{"FRENTE", "PLANEJADO", "REAL", "DELTA"}
		rows := make([][]string, 0, len(resp.Allocation))
		for _, r := range resp.Allocation {
			rows = append(rows, []string{Bold(r.FrontName), Pct(r.PlannedPct), Pct(r.ActualPct), SignedPct(r.DeltaPct)})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	b.WriteString("\n" + Header("Execução") + "\n")
	b.WriteString(fmt.Sprintf("Tarefas concluídas:  %d (%s tipo A)\n",
		resp.CompletedTasks, Bold(fmt.Sprintf("%d", resp.CompletedA))))
	b.WriteString(fmt.Sprintf("Deep work:           %d sessões, %.1fh\n",
		resp.DeepWorkCount, resp.DeepWorkHours))

	if len(resp.Fronts) > 0 {
		b.WriteString("\n" + Header("Saúde das frentes") + "\n")
		for _, f := range resp.Fronts {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n",
				HealthIndicator(f.Health.Status, f.Health.Label),
				Bold(f.FrontName),
				Dim(f.Health.Reason)))
		}
	}
	for _, name := range resp.GhostFronts {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  FANTASMA: %s", name)) + "\n")
	}

	if resp.Bottleneck != nil {
		b.WriteString("\n" + Header("Gargalo") + "\n")
		b.WriteString(fmt.Sprintf("%s — %s dos atrasos e falhas\n",
			StyleRed.Render(resp.Bottleneck.Label), Bold(Pct(resp.Bottleneck.Percent))))
	}

	if len(resp.Draft.ActionItems) > 0 {
		b.WriteString("\n" + Header("Rascunho sugerido") + "\n")
		for i, item := range resp.Draft.ActionItems {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
			if i < len(resp.Draft.Rationale) {
				b.WriteString(Dim("   "+resp.Draft.Rationale[i]) + "\n")
			}
		}
		b.WriteString(fmt.Sprintf("\nComprometimento sugerido: %s\n", commitmentPill(resp.Draft.Commitment)))
	}

	if resp.Journal != nil {
		b.WriteString("\n" + Header("Diário salvo") + "\n")
		b.WriteString(formatJournalBody(resp.Journal))
	}

	title := fmt.Sprintf("Revisão semanal — %s", resp.PeriodStart.Format("02/01/2006"))
	if resp.PeriodType == domain.PeriodMonthly {
		title = fmt.Sprintf("Revisão mensal — %s", resp.PeriodStart.Format("01/2006"))
	}
	return RenderBox(title, b.String())
}

// FormatJournal renders a saved journal entry on its own.
func FormatJournal(r *domain.StrategicReview) string {
	return RenderBox("Diário estratégico", formatJournalBody(r))
}

func formatJournalBody(r *domain.StrategicReview) string {
	var b strings.Builder
	if r.NextPriority != "" {
		b.WriteString("Próxima prioridade:  " + Bold(r.NextPriority) + "\n")
	}
	if r.StrategicDecision != "" {
		b.WriteString("Decisão:             " + r.StrategicDecision + "\n")
	}
	b.WriteString("Comprometimento:     " + commitmentPill(r.CommitmentLevel) + "\n")
	for i, item := range r.ActionItems {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
	if r.Reflection != "" {
		b.WriteString("\n" + Dim(r.Reflection) + "\n")
	}
	return b.String()
}

func commitmentPill(level domain.CommitmentLevel) string {
	switch level {
	case domain.CommitmentAlto:
		return StyleGreen.Render("alto")
	case domain.CommitmentMedio:
		return StyleYellow.Render("médio")
	case domain.CommitmentBaixo:
		return StyleRed.Render("baixo")
	default:
		return StyleDim.Render(string(level))
	}
}
