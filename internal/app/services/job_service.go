package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
)

// JobListingStore defines the persistence operations the job listing service needs.
type JobListingStore interface {
	Create(ctx context.Context, job *models.JobListing) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobListing, error)
	GetAll(ctx context.Context) ([]*models.JobListing, error)
}

// JobListingService defines methods for managing job listings
type JobListingService interface {
	PublishListing(ctx context.Context, req *dto.CreateJobListingRequest) (*models.JobListing, error)
	GetListingByID(ctx context.Context, id int64) (*models.JobListing, error)
	GetAllListings(ctx context.Context) ([]*models.JobListing, error)
}

type jobListingServiceImpl struct {
	store  JobListingStore
	logger zerolog.Logger
}

// NewJobListingService creates a new JobListingService
func NewJobListingService(store JobListingStore, logger zerolog.Logger) JobListingService {
	return &jobListingServiceImpl{store: store, logger: logger}
}

// PublishListing inserts a job listing and returns it with the generated identifier
func (s *jobListingServiceImpl) PublishListing(ctx context.Context, req *dto.CreateJobListingRequest) (*models.JobListing, error) {
	job := &models.JobListing{
		Title:          req.JobTitle,
		Description:    req.JobDescription,
		ExpectedSalary: req.ExpectedSalary,
		CompanyID:      req.CompanyID,
	}

	id, err := s.store.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = id

	s.logger.Info().Int64("jobID", id).Str("companyID", job.CompanyID).Msg("Job listing published")
	return job, nil
}

// GetListingByID retrieves a single job listing
func (s *jobListingServiceImpl) GetListingByID(ctx context.Context, id int64) (*models.JobListing, error) {
	return s.store.GetByID(ctx, id)
}

// GetAllListings retrieves all job listings
func (s *jobListingServiceImpl) GetAllListings(ctx context.Context) ([]*models.JobListing, error) {
	return s.store.GetAll(ctx)
}
