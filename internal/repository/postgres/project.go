package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// ProjectRepository implements repositories.ProjectRepository on
// postgres. IDs are assigned by the database on insert.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a postgres-backed project repository.
func NewProjectRepository(pool *pgxpool.Pool) repositories.ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create inserts a new project and fills in the generated ID.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO projects (title, description, tech_stack, github_url, live_demo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		project.Title,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveDemoURL,
	).Scan(&project.ID)

	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, tech_stack, github_url, live_demo_url
		FROM projects
		WHERE id = $1
	`, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.TechStack,
		&project.GithubURL,
		&project.LiveDemoURL,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, tech_stack, github_url, live_demo_url
		FROM projects
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.TechStack,
			&project.GithubURL,
			&project.LiveDemoURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// Update replaces all mutable fields of an existing project.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET title = $2, description = $3, tech_stack = $4, github_url = $5, live_demo_url = $6
		WHERE id = $1
	`,
		project.ID,
		project.Title,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveDemoURL,
	)

	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: project.ID}
	}

	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{ID: id}
	}

	return nil
}
