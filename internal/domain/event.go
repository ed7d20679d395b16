package domain

import "time"

// ExecutionEvent is one row of the append-only task outcome log. FailureReason
// is only present for delayed/failed events, and even then may be empty.
type ExecutionEvent struct {
	ID            string
	TaskID        string
	FrontID       string
	Type          EventType
	FailureReason *FailureReason
	CreatedAt     time.Time
}
