package domain

import (
	"fmt"
	"time"
)

// FrontScopeAll is the sentinel scope meaning a review covers every front.
const FrontScopeAll = "all"

// MaxActionItems bounds the journal action list.
const MaxActionItems = 12

// StrategicReview is the persisted journal entry for one (periodType,
// periodStart, frontScope) cell. PeriodStart is normalized to Monday for
// weekly reviews and the 1st for monthly ones before persisting.
type StrategicReview struct {
	ID                string
	PeriodType        PeriodType
	PeriodStart       time.Time
	FrontScope        string
	NextPriority      string
	StrategicDecision string
	CommitmentLevel   CommitmentLevel
	ActionItems       []string
	Reflection        string
	ReviewSnapshot    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks field ranges before any mutation is attempted.
func (r *StrategicReview) Validate() error {
	switch r.PeriodType {
	case PeriodWeekly, PeriodMonthly:
	default:
		return fmt.Errorf("invalid period type %q", r.PeriodType)
	}
	switch r.CommitmentLevel {
	case CommitmentBaixo, CommitmentMedio, CommitmentAlto:
	default:
		return fmt.Errorf("invalid commitment level %q", r.CommitmentLevel)
	}
	if len(r.ActionItems) > MaxActionItems {
		return fmt.Errorf("too many action items: %d (max %d)", len(r.ActionItems), MaxActionItems)
	}
	return nil
}
