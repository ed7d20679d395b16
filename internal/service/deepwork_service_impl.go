package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/google/uuid"
)

type deepWorkService struct {
	sessions repository.DeepWorkRepo
	tasks    repository.TaskRepo
	fronts   repository.FrontRepo
	uow      db.UnitOfWork
	minimum  int
	observer UseCaseObserver
}

// NewDeepWorkService builds the session lifecycle service. minimumBlockMinutes
// is the configured default minimum; zero falls back to the built-in default.
func NewDeepWorkService(
	sessions repository.DeepWorkRepo,
	tasks repository.TaskRepo,
	fronts repository.FrontRepo,
	uow db.UnitOfWork,
	minimumBlockMinutes int,
	observers ...UseCaseObserver,
) DeepWorkService {
	if minimumBlockMinutes <= 0 {
		minimumBlockMinutes = app.DefaultMinimumBlockMinutes
	}
	return &deepWorkService{
		sessions: sessions,
		tasks:    tasks,
		fronts:   fronts,
		uow:      uow,
		minimum:  minimumBlockMinutes,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *deepWorkService) Start(ctx context.Context, req app.StartDeepWorkRequest) (session *domain.DeepWorkSession, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": req.TaskID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "deepwork-start",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.TaskID == "" {
		return nil, &app.DeepWorkError{Code: app.DeepWorkErrValidation, Message: "task id is required"}
	}

	minimum := domain.IntFromPtrWithDefault(s.minimum, req.MinimumBlockMinutes)
	if minimum < app.MinimumBlockFloor {
		minimum = app.MinimumBlockFloor
	}
	target := domain.IntFromPtrWithDefault(minimum, req.TargetMinutes)
	if target < minimum {
		return nil, &app.DeepWorkError{
			Code:    app.DeepWorkErrValidation,
			Message: fmt.Sprintf("target of %d min is below the %d min minimum block", target, minimum),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteDeepWorkRepo(tx)

		task, err := txTasks.GetByID(ctx, req.TaskID)
		if err != nil {
			return err
		}
		if task.Terminal() {
			return &app.DeepWorkError{
				Code:    app.DeepWorkErrInvalidState,
				Message: fmt.Sprintf("task '%s' is %s", task.Title, task.Status),
			}
		}
		if !task.DeepWorkEligible() {
			return &app.DeepWorkError{
				Code:    app.DeepWorkErrValidation,
				Message: fmt.Sprintf("task '%s' is neither type A nor multi-block", task.Title),
			}
		}

		active, err := txSessions.GetActive(ctx)
		if err == nil {
			msg := fmt.Sprintf("session %s is still active", active.ID)
			if blocking, terr := txTasks.GetByID(ctx, active.TaskID); terr == nil {
				msg = fmt.Sprintf("session for task '%s' is still active", blocking.Title)
			}
			return &app.DeepWorkError{Code: app.DeepWorkErrActiveSession, Message: msg}
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		session = &domain.DeepWorkSession{
			ID:            uuid.New().String(),
			TaskID:        task.ID,
			FrontID:       task.FrontID,
			ProjectID:     task.ProjectID,
			StartedAt:     time.Now().UTC(),
			State:         domain.SessionActive,
			TargetMinutes: target,
		}
		// The partial unique index on active sessions backs this check under
		// concurrent starts.
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	fields["session_id"] = session.ID
	return session, nil
}

func (s *deepWorkService) RegisterInterruption(ctx context.Context, sessionID string) (*domain.DeepWorkSession, error) {
	return s.mutateCounter(ctx, sessionID, func(sess *domain.DeepWorkSession) error {
		return sess.RegisterInterruption()
	})
}

func (s *deepWorkService) RegisterBreak(ctx context.Context, sessionID string) (*domain.DeepWorkSession, error) {
	return s.mutateCounter(ctx, sessionID, func(sess *domain.DeepWorkSession) error {
		return sess.RegisterBreak()
	})
}

func (s *deepWorkService) mutateCounter(ctx context.Context, sessionID string, mutate func(*domain.DeepWorkSession) error) (*domain.DeepWorkSession, error) {
	var session *domain.DeepWorkSession
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteDeepWorkRepo(tx)

		sess, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := mutate(sess); err != nil {
			if errors.Is(err, domain.ErrSessionTerminal) {
				return &app.DeepWorkError{
					Code:    app.DeepWorkErrInvalidState,
					Message: fmt.Sprintf("session %s already ended", sessionID),
				}
			}
			return err
		}
		session = sess
		return txSessions.Update(ctx, sess)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *deepWorkService) Stop(ctx context.Context, req app.StopDeepWorkRequest) (session *domain.DeepWorkSession, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": req.SessionID, "switched_task": req.SwitchedTask}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "deepwork-stop",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteDeepWorkRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		sess, err := txSessions.GetByID(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if sess.Terminal() {
			// Stopping twice is a no-op.
			session = sess
			return nil
		}

		now := time.Now().UTC()
		sess.Finish(now, req.SwitchedTask, req.Notes)
		if err := txSessions.Update(ctx, sess); err != nil {
			return err
		}
		if sess.ProjectID != nil {
			if err := txProjects.TouchActivity(ctx, *sess.ProjectID, now); err != nil {
				return err
			}
		}
		session = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["state"] = string(session.State)
	fields["actual_minutes"] = session.ActualMinutes
	return session, nil
}

func (s *deepWorkService) GetActive(ctx context.Context) (*domain.DeepWorkSession, error) {
	return s.sessions.GetActive(ctx)
}

func (s *deepWorkService) GetSummary(ctx context.Context, req app.DeepWorkSummaryRequest) (*app.DeepWorkSummaryResponse, error) {
	if !req.Start.Before(req.End) {
		return nil, &app.DeepWorkError{Code: app.DeepWorkErrValidation, Message: "start must precede end"}
	}

	sessions, err := s.sessions.ListBetween(ctx, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	frontNames := make(map[string]string)
	fronts, err := s.fronts.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, f := range fronts {
		frontNames[f.ID] = f.Name
	}

	resp := &app.DeepWorkSummaryResponse{Start: req.Start, End: req.End}
	index := make(map[string]int)
	for _, sess := range sessions {
		resp.Sessions++
		resp.TotalMinutes += sess.ActualMinutes
		resp.Interruptions += sess.InterruptionCount
		resp.Breaks += sess.BreakCount
		switch sess.State {
		case domain.SessionCompleted:
			resp.Completed++
		case domain.SessionBroken:
			resp.Broken++
		}

		i, seen := index[sess.FrontID]
		if !seen {
			i = len(resp.ByFront)
			index[sess.FrontID] = i
			resp.ByFront = append(resp.ByFront, app.FrontDeepWork{
				FrontID:   sess.FrontID,
				FrontName: frontNames[sess.FrontID],
			})
		}
		resp.ByFront[i].Sessions++
		resp.ByFront[i].Minutes += sess.ActualMinutes
	}

	if active, err := s.sessions.GetActive(ctx); err == nil {
		resp.Active = active
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return resp, nil
}
