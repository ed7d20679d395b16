package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmagro/tracao/internal/app"
	"github.com/dmagro/tracao/internal/domain"
	"github.com/dmagro/tracao/internal/repository"
	"github.com/google/uuid"
)

type frontService struct {
	fronts repository.FrontRepo
}

func NewFrontService(fronts repository.FrontRepo) FrontService {
	return &frontService{fronts: fronts}
}

func (s *frontService) Create(ctx context.Context, f *domain.Front) error {
	if f.Name == "" {
		return &app.FrontError{Code: app.FrontErrValidation, Message: "front name is required"}
	}
	if f.Mode == "" {
		f.Mode = domain.ModeManutencao
	}
	if !domain.ValidFrontModes[string(f.Mode)] {
		return &app.FrontError{
			Code:    app.FrontErrValidation,
			Message: fmt.Sprintf("unknown front mode %q", f.Mode),
		}
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return s.fronts.Create(ctx, f)
}

func (s *frontService) GetByID(ctx context.Context, id string) (*domain.Front, error) {
	return s.fronts.GetByID(ctx, id)
}

func (s *frontService) List(ctx context.Context, includeArchived bool) ([]*domain.Front, error) {
	return s.fronts.List(ctx, includeArchived)
}

func (s *frontService) SetMode(ctx context.Context, id string, mode domain.FrontMode) (*domain.Front, error) {
	if !domain.ValidFrontModes[string(mode)] {
		return nil, &app.FrontError{
			Code:    app.FrontErrValidation,
			Message: fmt.Sprintf("unknown front mode %q", mode),
		}
	}
	f, err := s.fronts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Mode = mode
	f.UpdatedAt = time.Now().UTC()
	if err := s.fronts.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *frontService) Archive(ctx context.Context, id string) error {
	return s.fronts.Archive(ctx, id)
}

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return &app.ProjectError{Code: app.ProjectErrValidation, Message: "project name is required"}
	}
	if p.FrontID == "" {
		return &app.ProjectError{Code: app.ProjectErrValidation, Message: "front id is required"}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.ProjectAtivo
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) ListActiveByFront(ctx context.Context, frontID string) ([]*domain.Project, error) {
	return s.projects.ListActiveByFront(ctx, frontID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

type planService struct {
	plans repository.DayPlanRepo
}

func NewPlanService(plans repository.DayPlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) AddBlock(ctx context.Context, item *domain.DayPlanItem) error {
	switch item.BlockType {
	case domain.BlockTask:
		if item.TaskID == nil || *item.TaskID == "" {
			return &app.PlanError{Code: app.PlanErrValidation, Message: "task blocks need a task id"}
		}
	case domain.BlockRotina, domain.BlockPausa:
		if item.TaskID != nil {
			return &app.PlanError{
				Code:    app.PlanErrValidation,
				Message: fmt.Sprintf("%s blocks cannot reference a task", item.BlockType),
			}
		}
	default:
		return &app.PlanError{
			Code:    app.PlanErrValidation,
			Message: fmt.Sprintf("unknown block type %q", item.BlockType),
		}
	}
	if item.Minutes <= 0 {
		return &app.PlanError{Code: app.PlanErrValidation, Message: "block minutes must be positive"}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now().UTC()
	return s.plans.Create(ctx, item)
}
