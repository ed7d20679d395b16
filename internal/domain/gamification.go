package domain

import "time"

// GamificationStateID is the fixed primary key of the singleton score row.
// A seeded single-row table replaces "pick the most recent of possibly many",
// which races under concurrent creates.
const GamificationStateID = "default"

type GamificationState struct {
	ID            string
	CurrentScore  int
	WeeklyScore   int
	ExecutionDebt int
	StreakDays    int
	LastUpdate    time.Time
}
