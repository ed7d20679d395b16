package domain

import "time"

// DayPlanItem is one scheduled block of a daily plan. Only blocks of type
// "task" carry a task reference and count toward front minutes.
type DayPlanItem struct {
	ID        string
	PlanDate  time.Time
	BlockType BlockType
	TaskID    *string
	Minutes   int
	CreatedAt time.Time
}
