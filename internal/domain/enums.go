package domain

type FrontMode string

const (
	ModeAceleracao FrontMode = "aceleracao"
	ModeManutencao FrontMode = "manutencao"
	ModeStandby    FrontMode = "standby"
)

// ValidFrontModes is the canonical set of accepted front mode strings.
var ValidFrontModes = map[string]bool{
	"aceleracao": true, "manutencao": true, "standby": true,
}

type TaskType string

const (
	TaskTypeA TaskType = "a"
	TaskTypeB TaskType = "b"
	TaskTypeC TaskType = "c"
)

type TaskStatus string

const (
	TaskPendente  TaskStatus = "pendente"
	TaskFeito     TaskStatus = "feito"
	TaskArquivado TaskStatus = "arquivado"
)

type TaskNature string

const (
	NatureConstrucao TaskNature = "construcao"
	NatureOperacao   TaskNature = "operacao"
)

type ProjectStatus string

const (
	ProjectAtivo     ProjectStatus = "ativo"
	ProjectConcluido ProjectStatus = "concluido"
	ProjectArquivado ProjectStatus = "arquivado"
)

type SessionState string

const (
	SessionActive    SessionState = "active"
	SessionCompleted SessionState = "completed"
	SessionBroken    SessionState = "broken"
)

type EventType string

const (
	EventCompleted EventType = "completed"
	EventDelayed   EventType = "delayed"
	EventFailed    EventType = "failed"
)

type FailureReason string

const (
	ReasonEnergia         FailureReason = "energia"
	ReasonMedo            FailureReason = "medo"
	ReasonDistracao       FailureReason = "distracao"
	ReasonDependencia     FailureReason = "dependencia"
	ReasonFaltaClareza    FailureReason = "falta_clareza"
	ReasonFaltaHabilidade FailureReason = "falta_habilidade"
)

// FailureReasonLabels maps failure reason keys (plus the synthetic bucket keys
// used when an event carries no reason) to human-readable labels.
var FailureReasonLabels = map[string]string{
	"energia":          "Energia baixa",
	"medo":             "Medo / ansiedade",
	"distracao":        "Distração",
	"dependencia":      "Dependência de terceiros",
	"falta_clareza":    "Falta de clareza",
	"falta_habilidade": "Falta de habilidade",
	"reagendamento":    "Reagendamento",
	"falha_execucao":   "Falha de execução",
}

type Outcome string

const (
	OutcomeOnTime       Outcome = "on_time"
	OutcomeLate         Outcome = "late"
	OutcomePostponed    Outcome = "postponed"
	OutcomeNotConfirmed Outcome = "not_confirmed"
)

// ValidOutcomes is the canonical set of accepted outcome strings.
var ValidOutcomes = map[string]bool{
	"on_time": true, "late": true, "postponed": true, "not_confirmed": true,
}

type HealthStatus string

const (
	HealthForte         HealthStatus = "forte"
	HealthEstavel       HealthStatus = "estavel"
	HealthAtencao       HealthStatus = "atencao"
	HealthNegligenciada HealthStatus = "negligenciada"
	HealthStandby       HealthStatus = "standby"
)

type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

type CommitmentLevel string

const (
	CommitmentBaixo CommitmentLevel = "baixo"
	CommitmentMedio CommitmentLevel = "medio"
	CommitmentAlto  CommitmentLevel = "alto"
)

type BlockType string

const (
	BlockTask   BlockType = "task"
	BlockRotina BlockType = "rotina"
	BlockPausa  BlockType = "pausa"
)
