package contract

import "github.com/dmagro/tracao/internal/app"

type ApplyResultRequest = app.ApplyResultRequest

type ScoreResponse = app.ScoreResponse

type CompleteTaskRequest = app.CompleteTaskRequest

type PostponeTaskRequest = app.PostponeTaskRequest

type TaskError = app.TaskError

type ScoreError = app.ScoreError
