// Package engine holds the pure computations behind portfolio health,
// bottleneck analysis, gamified scoring and review rollups. Nothing in this
// package touches storage; services feed it plain inputs and persist what
// comes back.
package engine

import "github.com/dmagro/tracao/internal/domain"

// TractionWindowDays is the default lookback used to decide whether a project
// still has strategic traction.
const TractionWindowDays = 14

// HealthInput carries the four signals the front health classifier reads.
type HealthInput struct {
	Mode                 domain.FrontMode
	ActiveProjects       int
	ProjectsWithTraction int
	// HasTaskASignal is true when the front has any open task-A or any
	// task-A completed inside the review window.
	HasTaskASignal bool
}

// FrontHealth is the derived per-front classification. It is recomputed on
// every request and never persisted.
type FrontHealth struct {
	Status domain.HealthStatus
	Label  string
	Reason string
}

// healthLabels maps statuses to display labels.
var healthLabels = map[domain.HealthStatus]string{
	domain.HealthForte:         "Forte",
	domain.HealthEstavel:       "Estável",
	domain.HealthAtencao:       "Atenção",
	domain.HealthNegligenciada: "Negligenciada",
	domain.HealthStandby:       "Standby",
}

// ClassifyFrontHealth classifies one front. Decision order matters: project
// traction and task-A execution are each independently sufficient for a
// non-negative read, and standby short-circuits everything.
func ClassifyFrontHealth(in HealthInput) FrontHealth {
	switch {
	case in.Mode == domain.ModeStandby:
		return health(domain.HealthStandby, "frente em standby deliberado")
	case in.ProjectsWithTraction > 0 && in.HasTaskASignal:
		return health(domain.HealthForte, "tração em projetos e execução de tarefas A")
	case in.ProjectsWithTraction > 0:
		return health(domain.HealthEstavel, "tração parcial")
	case in.HasTaskASignal:
		return health(domain.HealthEstavel, "tração por execução")
	case in.ActiveProjects > 0:
		return health(domain.HealthAtencao, "projetos ativos sem tração recente")
	default:
		return health(domain.HealthNegligenciada, "sem projetos ativos, sem tração, sem tarefas A")
	}
}

func health(status domain.HealthStatus, reason string) FrontHealth {
	return FrontHealth{Status: status, Label: healthLabels[status], Reason: reason}
}
