package formatter

import (
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/contract"
)

// FormatPortfolio renders the per-front health dashboard.
func FormatPortfolio(resp *contract.PortfolioResponse) string {
	var b strings.Builder

	headers := []string{"FRENTE", "MODO", "SAÚDE", "PROJETOS", "TRAÇÃO", "TAREFA A"}
	rows := make([][]string, 0, len(resp.Fronts))
	for _, f := range resp.Fronts {
		taskA := Dim("—")
		if f.HasTaskASignal {
			taskA = StyleGreen.Render("sim")
		}
		rows = append(rows, []string{
			Bold(f.FrontName),
			ModeBadge(f.Mode),
			HealthIndicator(f.Health.Status, f.Health.Label),
			fmt.Sprintf("%d", f.ActiveProjects),
			fmt.Sprintf("%d", f.ProjectsWithTraction),
			taskA,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if resp.GhostCount > 0 {
		b.WriteString("\n")
		for _, f := range resp.Fronts {
			if !f.IsGhost {
				continue
			}
			b.WriteString(StyleYellow.Render(
				fmt.Sprintf("  FANTASMA: %s — sem tração e sem sinal de execução", f.FrontName)) + "\n")
		}
		b.WriteString(Dim("  use 'tracao portfolio resolve' para reativar, pausar ou arquivar") + "\n")
	}

	return RenderBox(fmt.Sprintf("Portfólio — semana de %s", resp.WeekStart.Format("02/01")), b.String())
}
