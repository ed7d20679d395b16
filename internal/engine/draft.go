package engine

import (
	"fmt"

	"github.com/dmagro/tracao/internal/domain"
)

// Thresholds for the commitment level suggested by the auto-draft.
const (
	draftCompletedAThreshold = 3
	draftDeepWorkHoursMin    = 4.0
	maxDraftActions          = 6
)

// DraftInput summarizes a review period for the auto-draft generator.
type DraftInput struct {
	CompletedA    int
	DeepWorkHours float64
	TopFront      string
	BottomFront   string
	GhostFronts   int
	Bottleneck    *Bottleneck
}

// Draft is a suggested journal entry. It pre-fills the user-editable review
// and is never persisted by the engine.
type Draft struct {
	ActionItems []string
	Commitment  domain.CommitmentLevel
	Rationale   []string
}

// draftRule pairs a trigger predicate with the action and rationale it emits.
// Rules are evaluated in order; earlier rules produce higher-priority actions.
type draftRule struct {
	applies   func(DraftInput) bool
	action    func(DraftInput) string
	rationale func(DraftInput) string
}

var draftRules = []draftRule{
	{
		applies: func(in DraftInput) bool { return in.GhostFronts > 0 },
		action: func(in DraftInput) string {
			return fmt.Sprintf("Reativar ou oficializar standby de %d frente(s) fantasma", in.GhostFronts)
		},
		rationale: func(in DraftInput) string {
			return fmt.Sprintf("%d frente(s) sem tração e sem sinal de execução", in.GhostFronts)
		},
	},
	{
		applies: func(in DraftInput) bool { return in.Bottleneck != nil },
		action: func(in DraftInput) string {
			return fmt.Sprintf("Atacar o gargalo dominante: %s", in.Bottleneck.Label)
		},
		rationale: func(in DraftInput) string {
			return fmt.Sprintf("%s respondeu por %d%% dos atrasos e falhas", in.Bottleneck.Label, in.Bottleneck.Percent)
		},
	},
	{
		applies: func(in DraftInput) bool { return in.CompletedA == 0 },
		action: func(in DraftInput) string {
			return "Garantir pelo menos 1 tarefa A concluída na próxima semana"
		},
		rationale: func(in DraftInput) string {
			return "nenhuma tarefa A foi concluída no período"
		},
	},
	{
		applies: func(in DraftInput) bool { return in.DeepWorkHours < draftDeepWorkHoursMin },
		action: func(in DraftInput) string {
			return fmt.Sprintf("Agendar blocos de deep work até somar %.0fh na semana", draftDeepWorkHoursMin)
		},
		rationale: func(in DraftInput) string {
			return fmt.Sprintf("apenas %.1fh de deep work no período", in.DeepWorkHours)
		},
	},
	{
		applies: func(in DraftInput) bool { return in.BottomFront != "" && in.BottomFront != in.TopFront },
		action: func(in DraftInput) string {
			return fmt.Sprintf("Revisar a alocação mínima da frente %s", in.BottomFront)
		},
		rationale: func(in DraftInput) string {
			return fmt.Sprintf("%s foi a frente com menos minutos alocados", in.BottomFront)
		},
	},
	{
		applies: func(in DraftInput) bool { return in.TopFront != "" },
		action: func(in DraftInput) string {
			return fmt.Sprintf("Manter o ritmo da frente %s", in.TopFront)
		},
		rationale: func(in DraftInput) string {
			return fmt.Sprintf("%s concentrou a maior parte dos minutos", in.TopFront)
		},
	},
}

// BuildDraft evaluates the rule table in order and assembles the suggested
// action list (capped), commitment level and rationale fragments.
func BuildDraft(in DraftInput) Draft {
	d := Draft{Commitment: suggestCommitment(in)}
	for _, rule := range draftRules {
		if len(d.ActionItems) >= maxDraftActions {
			break
		}
		if !rule.applies(in) {
			continue
		}
		d.ActionItems = append(d.ActionItems, rule.action(in))
		d.Rationale = append(d.Rationale, rule.rationale(in))
	}
	return d
}

// suggestCommitment grades the period: alto when both execution thresholds
// were hit, medio when there was partial progress toward either, baixo when
// the period shows essentially no strategic execution.
func suggestCommitment(in DraftInput) domain.CommitmentLevel {
	hitA := in.CompletedA >= draftCompletedAThreshold
	hitDeep := in.DeepWorkHours >= draftDeepWorkHoursMin

	switch {
	case hitA && hitDeep:
		return domain.CommitmentAlto
	case in.CompletedA > 0 || in.DeepWorkHours > 0:
		return domain.CommitmentMedio
	default:
		return domain.CommitmentBaixo
	}
}
