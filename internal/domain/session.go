package domain

import (
	"errors"
	"math"
	"time"
)

// ErrSessionTerminal is returned when a counter mutation is attempted on a
// session that already ended.
var ErrSessionTerminal = errors.New("deep work session already ended")

// DeepWorkSession is an exclusive, time-boxed focused-work block tied to one
// task. At most one session is active system-wide at any time; the storage
// layer enforces that with a partial unique index.
type DeepWorkSession struct {
	ID                string
	TaskID            string
	FrontID           string
	ProjectID         *string
	StartedAt         time.Time
	EndedAt           *time.Time
	State             SessionState
	TargetMinutes     int
	ActualMinutes     int
	InterruptionCount int
	BreakCount        int
	Notes             string
}

// Terminal reports whether the session reached a final state.
func (s *DeepWorkSession) Terminal() bool {
	return s.State == SessionCompleted || s.State == SessionBroken
}

// RegisterInterruption increments the interruption counter. The state does not
// change; interruptions are noise inside a still-running block.
func (s *DeepWorkSession) RegisterInterruption() error {
	if s.Terminal() {
		return ErrSessionTerminal
	}
	s.InterruptionCount++
	return nil
}

// RegisterBreak increments the break counter without changing state.
func (s *DeepWorkSession) RegisterBreak() error {
	if s.Terminal() {
		return ErrSessionTerminal
	}
	s.BreakCount++
	return nil
}

// Finish finalizes the session. Ending because the user switched tasks counts
// as a broken block and registers one extra break; a normal stop completes it.
// Calling Finish on a terminal session is a no-op.
func (s *DeepWorkSession) Finish(now time.Time, switchedTask bool, notes string) {
	if s.Terminal() {
		return
	}
	elapsed := math.Round(now.Sub(s.StartedAt).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	s.ActualMinutes = int(elapsed)
	s.EndedAt = &now
	if switchedTask {
		s.State = SessionBroken
		s.BreakCount++
	} else {
		s.State = SessionCompleted
	}
	if notes != "" {
		s.Notes = notes
	}
}
