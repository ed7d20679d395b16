package app

import (
	"time"

	"github.com/dmagro/tracao/internal/domain"
)

// Deep-work session policy defaults. The floor caps how low a caller-supplied
// minimum can go.
const (
	DefaultMinimumBlockMinutes = 45
	MinimumBlockFloor          = 15
)

type StartDeepWorkRequest struct {
	TaskID              string
	TargetMinutes       *int
	MinimumBlockMinutes *int
}

type StopDeepWorkRequest struct {
	SessionID    string
	SwitchedTask bool
	Notes        string
}

type DeepWorkSummaryRequest struct {
	Start time.Time
	End   time.Time
}

// FrontDeepWork is the per-front slice of a deep-work summary.
type FrontDeepWork struct {
	FrontID   string
	FrontName string
	Sessions  int
	Minutes   int
}

type DeepWorkSummaryResponse struct {
	Start         time.Time
	End           time.Time
	Sessions      int
	Completed     int
	Broken        int
	TotalMinutes  int
	Interruptions int
	Breaks        int
	ByFront       []FrontDeepWork
	Active        *domain.DeepWorkSession
}

type DeepWorkErrorCode string

const (
	DeepWorkErrValidation    DeepWorkErrorCode = "VALIDATION"
	DeepWorkErrActiveSession DeepWorkErrorCode = "ACTIVE_SESSION_EXISTS"
	DeepWorkErrInvalidState  DeepWorkErrorCode = "INVALID_STATE"
)

type DeepWorkError struct {
	Code    DeepWorkErrorCode
	Message string
}

func (e *DeepWorkError) Error() string {
	return string(e.Code) + ": " + e.Message
}
