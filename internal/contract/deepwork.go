package contract

import "github.com/dmagro/tracao/internal/app"

type StartDeepWorkRequest = app.StartDeepWorkRequest

type StopDeepWorkRequest = app.StopDeepWorkRequest

type DeepWorkSummaryRequest = app.DeepWorkSummaryRequest

type DeepWorkSummaryResponse = app.DeepWorkSummaryResponse

type FrontDeepWork = app.FrontDeepWork

type DeepWorkErrorCode = app.DeepWorkErrorCode

const (
	DeepWorkErrValidation    DeepWorkErrorCode = app.DeepWorkErrValidation
	DeepWorkErrActiveSession DeepWorkErrorCode = app.DeepWorkErrActiveSession
	DeepWorkErrInvalidState  DeepWorkErrorCode = app.DeepWorkErrInvalidState
)

type DeepWorkError = app.DeepWorkError
