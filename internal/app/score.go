package app

import "github.com/dmagro/tracao/internal/domain"

type ApplyResultRequest struct {
	Outcome domain.Outcome
}

type ScoreResponse struct {
	State domain.GamificationState
	// Delta is the signed amount the last outcome contributed.
	Delta int
}

type ScoreErrorCode string

const (
	ScoreErrValidation ScoreErrorCode = "VALIDATION"
)

type ScoreError struct {
	Code    ScoreErrorCode
	Message string
}

func (e *ScoreError) Error() string {
	return string(e.Code) + ": " + e.Message
}
