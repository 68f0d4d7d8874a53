package service

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// projectService implements the ProjectService interface.
type projectService struct {
	projectRepo repositories.ProjectRepository
	draftOpts   models.DraftOptions
	logger      *slog.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject validates the draft and stores a new project.
func (s *projectService) CreateProject(ctx context.Context, draft *models.ProjectDraft) (*models.Project, error) {
	if err := draft.Validate(s.draftOpts); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Fields are stored exactly as submitted so a record round-trips
	// through the edit form unchanged.
	project := &models.Project{
		Title:       draft.Title,
		Description: draft.Description,
		TechStack:   draft.TechStack,
		GithubURL:   draft.GithubURL,
		LiveDemoURL: draft.LiveDemoURL,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"title", project.Title,
	)

	return project, nil
}

// GetProject retrieves a project by ID.
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves every project.
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject validates the draft and replaces every mutable field
// of the project. The ID in the path is authoritative; drafts carry
// no identifier.
func (s *projectService) UpdateProject(ctx context.Context, id string, draft *models.ProjectDraft) (*models.Project, error) {
	if err := draft.Validate(s.draftOpts); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = draft.Title
	project.Description = draft.Description
	project.TechStack = draft.TechStack
	project.GithubURL = draft.GithubURL
	project.LiveDemoURL = draft.LiveDemoURL

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"title", project.Title,
	)

	return project, nil
}

// DeleteProject removes a project by ID.
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	// Verify the project exists first for a precise not-found error.
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)

	return nil
}
