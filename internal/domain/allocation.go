package domain

import "time"

// WeeklyAllocation is the user-set planned share for one front in one week.
type WeeklyAllocation struct {
	FrontID    string
	WeekStart  time.Time
	PlannedPct int
	UpdatedAt  time.Time
}
