package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/dberrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project row
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (project_id, project_name, domain_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, project.ID, project.Name, project.Domain)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("project with this identifier already exists")
		}
		logger.Error().Err(err).Str("projectID", project.ID).Msg("Error executing create project query")
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// GetAll retrieves all projects in the store's default order
func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT project_id, project_name, domain_name
		FROM projects
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Domain); err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}
