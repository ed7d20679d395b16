package engine

import (
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/period"
)

// ApplyOutcome folds one task outcome into the gamification state. The delta
// is policy supplied by configuration; the transition rules here are not:
//
//   - execution debt only ever grows, and only on negative deltas;
//   - not_confirmed always resets the streak, even mid-day;
//   - otherwise the streak moves at most once per calendar day, and only
//     upward, and only on a non-negative delta.
func ApplyOutcome(state *domain.GamificationState, outcome domain.Outcome, delta int, now time.Time) {
	state.CurrentScore += delta
	state.WeeklyScore += delta

	if delta < 0 {
		state.ExecutionDebt += -delta
	}

	switch {
	case outcome == domain.OutcomeNotConfirmed:
		state.StreakDays = 0
	case !state.LastUpdate.IsZero() && period.SameDay(state.LastUpdate, now):
		// Streak already settled for today.
	case delta >= 0:
		state.StreakDays++
	}

	state.LastUpdate = now
}
