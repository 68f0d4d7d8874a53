package view

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain/models"
)

// fakeCollection implements Collection with pluggable behavior per
// operation. Unset operations fail loudly so tests cannot silently
// depend on them.
type fakeCollection struct {
	listAll func(ctx context.Context) ([]models.Project, error)
	getByID func(ctx context.Context, id string) (*models.Project, error)
	create  func(ctx context.Context, draft models.ProjectDraft) (*models.Project, error)
	update  func(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error)
	remove  func(ctx context.Context, id string) error
}

var errNotWired = errors.New("operation not wired in fake")

func (f *fakeCollection) ListAll(ctx context.Context) ([]models.Project, error) {
	if f.listAll == nil {
		return nil, errNotWired
	}
	return f.listAll(ctx)
}

func (f *fakeCollection) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if f.getByID == nil {
		return nil, errNotWired
	}
	return f.getByID(ctx, id)
}

func (f *fakeCollection) Create(ctx context.Context, draft models.ProjectDraft) (*models.Project, error) {
	if f.create == nil {
		return nil, errNotWired
	}
	return f.create(ctx, draft)
}

func (f *fakeCollection) Update(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error) {
	if f.update == nil {
		return nil, errNotWired
	}
	return f.update(ctx, id, draft)
}

func (f *fakeCollection) Delete(ctx context.Context, id string) error {
	if f.remove == nil {
		return errNotWired
	}
	return f.remove(ctx, id)
}

// recordingNavigator captures navigation intents in order.
type recordingNavigator struct {
	routes []Route
}

func (n *recordingNavigator) Navigate(r Route) {
	n.routes = append(n.routes, r)
}

// numberedProjects builds n projects titled Project 1..n.
func numberedProjects(n int) []models.Project {
	projects := make([]models.Project, n)
	for i := range projects {
		projects[i] = models.Project{
			ID:    fmt.Sprintf("p%d", i+1),
			Title: fmt.Sprintf("Project %d", i+1),
		}
	}
	return projects
}
