package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// ProjectService defines business logic operations for projects.
// Create and update both take a full draft; updates replace every
// mutable field rather than patching a subset.
type ProjectService interface {
	// CreateProject validates the draft and stores a new project.
	CreateProject(ctx context.Context, draft *models.ProjectDraft) (*models.Project, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// ListProjects retrieves every project.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProject validates the draft and replaces the project's fields.
	UpdateProject(ctx context.Context, id string, draft *models.ProjectDraft) (*models.Project, error)

	// DeleteProject removes a project by ID.
	DeleteProject(ctx context.Context, id string) error
}
