package testutil

import (
	"time"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/google/uuid"
)

// Front options
type FrontOption func(*domain.Front)

func WithFrontMode(m domain.FrontMode) FrontOption {
	return func(f *domain.Front) {
		f.Mode = m
	}
}

func NewTestFront(name string, opts ...FrontOption) *domain.Front {
	now := time.Now().UTC()
	f := &domain.Front{
		ID:        uuid.New().String(),
		Name:      name,
		Mode:      domain.ModeManutencao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Project options
type ProjectOption func(*domain.Project)

func WithLastActivity(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.LastActivityAt = &t
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(frontID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		FrontID:   frontID,
		Name:      name,
		Status:    domain.ProjectAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &projectID
	}
}

func WithMultiBlock() TaskOption {
	return func(t *domain.Task) {
		t.MultiBlock = true
	}
}

func WithNature(n domain.TaskNature) TaskOption {
	return func(t *domain.Task) {
		t.Nature = n
	}
}

func WithCompletedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskFeito
		t.CompletedAt = &at
	}
}

func NewTestTask(frontID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:        uuid.New().String(),
		FrontID:   frontID,
		Title:     title,
		Type:      domain.TaskTypeB,
		Status:    domain.TaskPendente,
		Nature:    domain.NatureOperacao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// NewTestPlanItem builds a day-plan task block for the given date.
func NewTestPlanItem(taskID string, date time.Time, minutes int) *domain.DayPlanItem {
	return &domain.DayPlanItem{
		ID:        uuid.New().String(),
		PlanDate:  date,
		BlockType: domain.BlockTask,
		TaskID:    &taskID,
		Minutes:   minutes,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestEvent builds an execution event at the given time.
func NewTestEvent(taskID, frontID string, eventType domain.EventType, reason *domain.FailureReason, at time.Time) *domain.ExecutionEvent {
	return &domain.ExecutionEvent{
		ID:            uuid.New().String(),
		TaskID:        taskID,
		FrontID:       frontID,
		Type:          eventType,
		FailureReason: reason,
		CreatedAt:     at,
	}
}
