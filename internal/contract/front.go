package contract

import "github.com/dmagro/tracao/internal/app"

type FrontErrorCode = app.FrontErrorCode

const FrontErrValidation FrontErrorCode = app.FrontErrValidation

type FrontError = app.FrontError

type ProjectErrorCode = app.ProjectErrorCode

const ProjectErrValidation ProjectErrorCode = app.ProjectErrValidation

type ProjectError = app.ProjectError

type PlanErrorCode = app.PlanErrorCode

const PlanErrValidation PlanErrorCode = app.PlanErrValidation

type PlanError = app.PlanError
