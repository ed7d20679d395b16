package formatter

import (
	"testing"
	"time"

	"github.com/dmagro/tracao/internal/contract"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestFormatReview_ShowsRollupBottleneckAndDraft(t *testing.T) {
	resp := &contract.ReviewResponse{
		PeriodType:  domain.PeriodWeekly,
		PeriodStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Minutes: engine.MinutesSnapshot{
			TotalMinutes:        300,
			ConstructionMinutes: 200,
			OperationMinutes:    100,
			DisconnectedMinutes: 45,
		},
		Allocation: []engine.AllocationRow{
			{FrontName: "Empresa", PlannedPct: 60, ActualPct: 70, DeltaPct: 10},
		},
		CompletedTasks: 5,
		CompletedA:     2,
		DeepWorkCount:  3,
		DeepWorkHours:  2.5,
		GhostFronts:    []string{"Estudos"},
		Bottleneck:     &engine.Bottleneck{Key: "energia", Label: "Energia baixa", Percent: 67},
		Draft: engine.Draft{
			ActionItems: []string{"Atacar o gargalo dominante: Energia baixa"},
			Rationale:   []string{"Energia baixa respondeu por 67% dos atrasos e falhas"},
			Commitment:  domain.CommitmentMedio,
		},
	}

	out := FormatReview(resp)
	assert.Contains(t, out, "5h")
	assert.Contains(t, out, "Empresa")
	assert.Contains(t, out, "Energia baixa")
	assert.Contains(t, out, "67%")
	assert.Contains(t, out, "FANTASMA: Estudos")
	assert.Contains(t, out, "Atacar o gargalo")
	assert.Contains(t, out, "tarefas sem projeto")
}

func TestFormatReview_MonthlyTitleAndJournal(t *testing.T) {
	resp := &contract.ReviewResponse{
		PeriodType:  domain.PeriodMonthly,
		PeriodStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Journal: &domain.StrategicReview{
			NextPriority:    "Fechar o trimestre",
			CommitmentLevel: domain.CommitmentAlto,
			ActionItems:     []string{"revisar metas"},
		},
	}

	out := FormatReview(resp)
	assert.Contains(t, out, "08/2026")
	assert.Contains(t, out, "Fechar o trimestre")
	assert.Contains(t, out, "revisar metas")
}
