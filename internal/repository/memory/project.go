package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// ProjectRepository is an in-memory implementation used when no
// database is configured (dev default) and by tests. Records keep
// insertion order, matching the database's natural listing order.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]models.Project
	order    []string
}

// NewProjectRepository creates an empty in-memory repository.
func NewProjectRepository() repositories.ProjectRepository {
	return &ProjectRepository{
		projects: make(map[string]models.Project),
	}
}

// Create stores a new project under a generated ID.
func (r *ProjectRepository) Create(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = uuid.New().String()
	r.projects[project.ID] = *project
	r.order = append(r.order, project.ID)
	return nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	return &project, nil
}

// List retrieves all projects in insertion order.
func (r *ProjectRepository) List(_ context.Context) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, r.projects[id])
	}
	return projects, nil
}

// Update replaces an existing project's fields.
func (r *ProjectRepository) Update(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; !ok {
		return &domain.NotFoundError{ID: project.ID}
	}
	r.projects[project.ID] = *project
	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return &domain.NotFoundError{ID: id}
	}
	delete(r.projects, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
