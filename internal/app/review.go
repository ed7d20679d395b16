package app

import (
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
)

type ReviewRequest struct {
	PeriodType domain.PeriodType
	// PeriodStart is normalized by the service: Monday for weekly, the 1st
	// for monthly.
	PeriodStart time.Time
	// FrontScope is a front id, or empty/"all" for the whole portfolio.
	FrontScope string
}

type ReviewResponse struct {
	PeriodType  domain.PeriodType
	PeriodStart time.Time
	PeriodEnd   time.Time
	FrontScope  string

	Minutes    engine.MinutesSnapshot
	Allocation []engine.AllocationRow

	CompletedTasks  int
	CompletedA      int
	DeepWorkCount   int
	DeepWorkMinutes int
	DeepWorkHours   float64

	Fronts      []FrontPortfolioView
	GhostFronts []string
	Bottleneck  *engine.Bottleneck

	// Draft pre-fills the journal; it is never persisted by the engine.
	Draft engine.Draft
	// Journal is the saved entry for this cell, if any.
	Journal *domain.StrategicReview
}

type SaveJournalRequest struct {
	PeriodType        domain.PeriodType
	PeriodStart       time.Time
	FrontScope        string
	NextPriority      string
	StrategicDecision string
	CommitmentLevel   domain.CommitmentLevel
	ActionItems       []string
	Reflection        string
}

type ReviewErrorCode string

const (
	ReviewErrValidation ReviewErrorCode = "VALIDATION"
)

type ReviewError struct {
	Code    ReviewErrorCode
	Message string
}

func (e *ReviewError) Error() string {
	return string(e.Code) + ": " + e.Message
}
