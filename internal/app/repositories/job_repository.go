package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// JobListingRepository handles job listing database operations
type JobListingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobListingRepository creates a new JobListingRepository
func NewJobListingRepository(db *pgxpool.Pool) *JobListingRepository {
	return &JobListingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new job listing and returns its generated identifier
func (r *JobListingRepository) Create(ctx context.Context, job *models.JobListing) (int64, error) {
	sql, args, err := r.sb.Insert("job_listings").
		Columns("job_title", "job_description", "expected_salary", "company_id").
		Values(job.Title, job.Description, job.ExpectedSalary, job.CompanyID).
		Suffix("RETURNING job_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create job listing query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("companyID", job.CompanyID).Msg("Error executing create job listing query")
		return 0, fmt.Errorf("error creating job listing: %w", err)
	}

	return id, nil
}

// GetByID retrieves a job listing by its identifier
func (r *JobListingRepository) GetByID(ctx context.Context, id int64) (*models.JobListing, error) {
	sql, args, err := r.sb.Select("job_id", "job_title", "job_description", "expected_salary", "company_id").
		From("job_listings").
		Where(squirrel.Eq{"job_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job listing query: %w", err)
	}

	job := &models.JobListing{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.Title, &job.Description, &job.ExpectedSalary, &job.CompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("job listing not found")
		}
		return nil, fmt.Errorf("error getting job listing by ID: %w", err)
	}

	return job, nil
}

// GetAll retrieves all job listings in the store's default order
func (r *JobListingRepository) GetAll(ctx context.Context) ([]*models.JobListing, error) {
	sql, args, err := r.sb.Select("job_id", "job_title", "job_description", "expected_salary", "company_id").
		From("job_listings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all job listings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying job listings: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobListing{}
	for rows.Next() {
		job := &models.JobListing{}
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.ExpectedSalary, &job.CompanyID); err != nil {
			return nil, fmt.Errorf("error scanning job listing row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job listing rows: %w", err)
	}

	return jobs, nil
}
