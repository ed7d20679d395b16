package contract

import "github.com/dmagro/tracao/internal/app"

type GetWeeklyAllocationRequest = app.GetWeeklyAllocationRequest

type SetWeeklyAllocationRequest = app.SetWeeklyAllocationRequest

type AllocationInput = app.AllocationInput

type AllocationResponse = app.AllocationResponse

type AllocationErrorCode = app.AllocationErrorCode

const (
	AllocationErrValidation AllocationErrorCode = app.AllocationErrValidation
	AllocationErrInvalidSum AllocationErrorCode = app.AllocationErrInvalidSum
)

type AllocationError = app.AllocationError
