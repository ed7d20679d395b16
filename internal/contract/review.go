package contract

import "github.com/dmagro/tracao/internal/app"

type ReviewRequest = app.ReviewRequest

type ReviewResponse = app.ReviewResponse

type SaveJournalRequest = app.SaveJournalRequest

type ReviewErrorCode = app.ReviewErrorCode

const (
	ReviewErrValidation ReviewErrorCode = app.ReviewErrValidation
)

type ReviewError = app.ReviewError
