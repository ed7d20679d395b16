package domain

import "time"

type Task struct {
	ID          string
	FrontID     string
	ProjectID   *string
	Title       string
	Type        TaskType
	Status      TaskStatus
	Nature      TaskNature
	Priority    int
	MultiBlock  bool
	WaitingOn   string
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Terminal reports whether the task can no longer be worked on.
func (t *Task) Terminal() bool {
	return t.Status == TaskFeito || t.Status == TaskArquivado
}

// DeepWorkEligible reports whether the task qualifies as a deep-work target:
// highest-impact tasks always do, and any task explicitly flagged as spanning
// multiple blocks.
func (t *Task) DeepWorkEligible() bool {
	return t.Type == TaskTypeA || t.MultiBlock
}

// Complete marks the task done and stamps completion time.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskFeito
	t.CompletedAt = &now
	t.UpdatedAt = now
}
