package app

type FrontErrorCode string

const (
	FrontErrValidation FrontErrorCode = "VALIDATION"
)

type FrontError struct {
	Code    FrontErrorCode
	Message string
}

func (e *FrontError) Error() string {
	return string(e.Code) + ": " + e.Message
}

type ProjectErrorCode string

const (
	ProjectErrValidation ProjectErrorCode = "VALIDATION"
)

type ProjectError struct {
	Code    ProjectErrorCode
	Message string
}

func (e *ProjectError) Error() string {
	return string(e.Code) + ": " + e.Message
}

type PlanErrorCode string

const (
	PlanErrValidation PlanErrorCode = "VALIDATION"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
