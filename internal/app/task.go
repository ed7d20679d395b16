package app

import "github.com/dmagro/tracao/internal/domain"

type CompleteTaskRequest struct {
	TaskID  string
	Outcome domain.Outcome
}

type PostponeTaskRequest struct {
	TaskID string
	Reason *domain.FailureReason
}

type TaskErrorCode string

const (
	TaskErrValidation   TaskErrorCode = "VALIDATION"
	TaskErrInvalidState TaskErrorCode = "INVALID_STATE"
)

type TaskError struct {
	Code    TaskErrorCode
	Message string
}

func (e *TaskError) Error() string {
	return string(e.Code) + ": " + e.Message
}
