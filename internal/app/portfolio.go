package app

import (
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
)

type PortfolioRequest struct {
	// WeekStart anchors the review window; traction and task-A signals are
	// evaluated relative to its week end.
	WeekStart time.Time
}

// FrontPortfolioView is the derived per-front health card.
type FrontPortfolioView struct {
	FrontID              string
	FrontName            string
	Mode                 domain.FrontMode
	ActiveProjects       int
	ProjectsWithTraction int
	HasTaskASignal       bool
	Health               engine.FrontHealth
	IsGhost              bool
}

type PortfolioResponse struct {
	GeneratedAt time.Time
	WeekStart   time.Time
	Fronts      []FrontPortfolioView
	GhostCount  int
}

// GhostAction is what the user decided to do with a ghost front.
type GhostAction string

const (
	GhostActionReactivate GhostAction = "reactivate"
	GhostActionStandby    GhostAction = "standby"
	GhostActionArchive    GhostAction = "archive"
)

type ResolveGhostRequest struct {
	FrontID string
	Action  GhostAction
}

type PortfolioErrorCode string

const (
	PortfolioErrInvalidAction PortfolioErrorCode = "INVALID_ACTION"
	PortfolioErrNotGhost      PortfolioErrorCode = "NOT_GHOST"
)

type PortfolioError struct {
	Code    PortfolioErrorCode
	Message string
}

func (e *PortfolioError) Error() string {
	return string(e.Code) + ": " + e.Message
}
