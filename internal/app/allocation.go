package app

import (
	"time"

	"github.com/dmagro/tracao/internal/engine"
)

type GetWeeklyAllocationRequest struct {
	WeekStart time.Time
	// FrontID restricts the minutes scan to one front; empty means all.
	FrontID string
}

type AllocationInput struct {
	FrontID    string
	PlannedPct int
}

type SetWeeklyAllocationRequest struct {
	WeekStart   time.Time
	Allocations []AllocationInput
}

type AllocationResponse struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	TotalMinutes int
	Rows         []engine.AllocationRow
}

type AllocationErrorCode string

const (
	AllocationErrValidation AllocationErrorCode = "VALIDATION"
	AllocationErrInvalidSum AllocationErrorCode = "INVALID_SUM"
)

type AllocationError struct {
	Code    AllocationErrorCode
	Message string
}

func (e *AllocationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
