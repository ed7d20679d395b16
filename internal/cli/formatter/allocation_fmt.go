package formatter

import (
	"fmt"
	"strings"

	"github.com/dmagro/tracao/internal/contract"
)

// FormatAllocation renders planned versus actual share per front.
func FormatAllocation(resp *contract.AllocationResponse) string {
	var b strings.Builder

	if len(resp.Rows) == 0 {
		b.WriteString(Dim("nenhuma alocação definida e nenhum minuto planejado") + "\n")
	} else {
		headers := []string{"FRENTE", "PLANEJADO", "REAL", "DELTA", "MINUTOS"}
		rows := make([][]string, 0, len(resp.Rows))
		for _, r := range resp.Rows {
			rows = append(rows, []string{
				Bold(r.FrontName),
				Pct(r.PlannedPct),
				Pct(r.ActualPct),
				SignedPct(r.DeltaPct),
				FormatMinutes(r.ActualMinutes),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n" + Dim(fmt.Sprintf("total planejado na semana: %s", FormatMinutes(resp.TotalMinutes))) + "\n")
	}

	return RenderBox(
		fmt.Sprintf("Alocação — semana de %s", resp.WeekStart.Format("02/01")),
		b.String(),
	)
}
