package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/config"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	deltas   config.ScoreConfig
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, deltas config.ScoreConfig, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		deltas:   deltas,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return &app.TaskError{Code: app.TaskErrValidation, Message: "title is required"}
	}
	if t.FrontID == "" {
		return &app.TaskError{Code: app.TaskErrValidation, Message: "front id is required"}
	}
	switch t.Type {
	case domain.TaskTypeA, domain.TaskTypeB, domain.TaskTypeC:
	default:
		return &app.TaskError{Code: app.TaskErrValidation, Message: fmt.Sprintf("unknown task type %q", t.Type)}
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskPendente
	}
	if t.Nature == "" {
		t.Nature = domain.NatureConstrucao
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListOpenByFront(ctx context.Context, frontID string) ([]*domain.Task, error) {
	return s.tasks.ListOpenByFront(ctx, frontID)
}

// Complete marks the task done, logs the completion event, moves the score and
// stamps project activity, all in one transaction.
func (s *taskService) Complete(ctx context.Context, req app.CompleteTaskRequest) (resp *app.ScoreResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": req.TaskID, "outcome": string(req.Outcome)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task-complete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	outcome := req.Outcome
	if outcome == "" {
		outcome = domain.OutcomeOnTime
	}
	switch outcome {
	case domain.OutcomeOnTime, domain.OutcomeLate:
	default:
		return nil, &app.TaskError{
			Code:    app.TaskErrValidation,
			Message: fmt.Sprintf("completion outcome must be on_time or late, got %q", outcome),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txEvents := repository.NewSQLiteEventRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		task, err := txTasks.GetByID(ctx, req.TaskID)
		if err != nil {
			return err
		}
		if task.Terminal() {
			return &app.TaskError{
				Code:    app.TaskErrInvalidState,
				Message: fmt.Sprintf("task '%s' is already %s", task.Title, task.Status),
			}
		}

		now := time.Now().UTC()
		task.Complete(now)
		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}

		if err := txEvents.Create(ctx, &domain.ExecutionEvent{
			ID:        uuid.New().String(),
			TaskID:    task.ID,
			FrontID:   task.FrontID,
			Type:      domain.EventCompleted,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		if task.ProjectID != nil {
			if err := txProjects.TouchActivity(ctx, *task.ProjectID, now); err != nil {
				return err
			}
		}

		resp, err = applyOutcomeTx(ctx, tx, outcome, s.deltas)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["delta"] = resp.Delta
	return resp, nil
}

// Postpone logs a delayed event with its failure reason and applies the
// postponed outcome. The task stays open.
func (s *taskService) Postpone(ctx context.Context, req app.PostponeTaskRequest) (resp *app.ScoreResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": req.TaskID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task-postpone",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Reason != nil {
		switch *req.Reason {
		case domain.ReasonEnergia, domain.ReasonMedo, domain.ReasonDistracao,
			domain.ReasonDependencia, domain.ReasonFaltaClareza, domain.ReasonFaltaHabilidade:
		default:
			return nil, &app.TaskError{
				Code:    app.TaskErrValidation,
				Message: fmt.Sprintf("unknown failure reason %q", *req.Reason),
			}
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txEvents := repository.NewSQLiteEventRepo(tx)

		task, err := txTasks.GetByID(ctx, req.TaskID)
		if err != nil {
			return err
		}
		if task.Terminal() {
			return &app.TaskError{
				Code:    app.TaskErrInvalidState,
				Message: fmt.Sprintf("task '%s' is already %s", task.Title, task.Status),
			}
		}

		if err := txEvents.Create(ctx, &domain.ExecutionEvent{
			ID:            uuid.New().String(),
			TaskID:        task.ID,
			FrontID:       task.FrontID,
			Type:          domain.EventDelayed,
			FailureReason: req.Reason,
			CreatedAt:     time.Now().UTC(),
		}); err != nil {
			return err
		}

		resp, err = applyOutcomeTx(ctx, tx, domain.OutcomePostponed, s.deltas)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["delta"] = resp.Delta
	return resp, nil
}
