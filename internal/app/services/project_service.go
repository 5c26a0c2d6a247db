package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
)

// ProjectStore defines the persistence operations the project service needs.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetAll(ctx context.Context) ([]*models.Project, error)
}

// ProjectService defines methods for managing project entries
type ProjectService interface {
	AddProject(ctx context.Context, req *dto.CreateProjectRequest) error
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
}

type projectServiceImpl struct {
	store  ProjectStore
	logger zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(store ProjectStore, logger zerolog.Logger) ProjectService {
	return &projectServiceImpl{store: store, logger: logger}
}

// AddProject inserts a new project entry
func (s *projectServiceImpl) AddProject(ctx context.Context, req *dto.CreateProjectRequest) error {
	project := &models.Project{
		ID:     req.ProjectID,
		Name:   req.ProjectName,
		Domain: req.DomainName,
	}

	if err := s.store.Create(ctx, project); err != nil {
		return err
	}

	s.logger.Info().Str("projectID", project.ID).Msg("Project added")
	return nil
}

// GetAllProjects retrieves all project entries
func (s *projectServiceImpl) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.store.GetAll(ctx)
}
