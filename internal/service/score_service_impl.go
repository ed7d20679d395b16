package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/config"
	"github.com/dmagro/tracao/internal/db"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/engine"
	"github.com/dmagro/tracao/internal/repository"
)

type scoreService struct {
	state    repository.GamificationRepo
	uow      db.UnitOfWork
	deltas   config.ScoreConfig
	observer UseCaseObserver
}

func NewScoreService(state repository.GamificationRepo, uow db.UnitOfWork, deltas config.ScoreConfig, observers ...UseCaseObserver) ScoreService {
	return &scoreService{
		state:    state,
		uow:      uow,
		deltas:   deltas,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scoreService) ApplyResult(ctx context.Context, req app.ApplyResultRequest) (resp *app.ScoreResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"outcome": string(req.Outcome)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "score-apply-result",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if !domain.ValidOutcomes[string(req.Outcome)] {
		return nil, &app.ScoreError{
			Code:    app.ScoreErrValidation,
			Message: fmt.Sprintf("unknown outcome %q", req.Outcome),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		resp, txErr = applyOutcomeTx(ctx, tx, req.Outcome, s.deltas)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	fields["delta"] = resp.Delta
	fields["score"] = resp.State.CurrentScore
	return resp, nil
}

func (s *scoreService) GetState(ctx context.Context) (*domain.GamificationState, error) {
	return s.state.Get(ctx)
}

// applyOutcomeTx mutates the singleton score row inside an already-open
// transaction. Task completion and postponement reuse it so the score moves in
// the same transaction as the task.
func applyOutcomeTx(ctx context.Context, tx db.DBTX, outcome domain.Outcome, deltas config.ScoreConfig) (*app.ScoreResponse, error) {
	txState := repository.NewSQLiteGamificationRepo(tx)

	state, err := txState.Get(ctx)
	if err != nil {
		return nil, err
	}

	delta := deltas.DeltaFor(outcome)
	engine.ApplyOutcome(state, outcome, delta, time.Now().UTC())
	if err := txState.Update(ctx, state); err != nil {
		return nil, err
	}
	return &app.ScoreResponse{State: *state, Delta: delta}, nil
}
