package contract

import "github.com/dmagro/tracao/internal/app"

type PortfolioRequest = app.PortfolioRequest

type PortfolioResponse = app.PortfolioResponse

type FrontPortfolioView = app.FrontPortfolioView

type GhostAction = app.GhostAction

const (
	GhostActionReactivate GhostAction = app.GhostActionReactivate
	GhostActionStandby    GhostAction = app.GhostActionStandby
	GhostActionArchive    GhostAction = app.GhostActionArchive
)

type ResolveGhostRequest = app.ResolveGhostRequest

type PortfolioErrorCode = app.PortfolioErrorCode

const (
	PortfolioErrInvalidAction PortfolioErrorCode = app.PortfolioErrInvalidAction
	PortfolioErrNotGhost      PortfolioErrorCode = app.PortfolioErrNotGhost
)

type PortfolioError = app.PortfolioError
