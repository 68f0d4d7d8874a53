package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// ProjectRepository defines data access operations for projects.
type ProjectRepository interface {
	// Create stores a new project and fills in its generated ID.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID.
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// List retrieves all projects in insertion order.
	List(ctx context.Context) ([]models.Project, error)

	// Update replaces all mutable fields of an existing project.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project by ID.
	Delete(ctx context.Context, id string) error
}
