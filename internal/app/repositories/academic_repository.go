package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/pkg/apperrors"
	"github.com/roshr/careertrack/internal/pkg/logger"
)

// AcademicPerformanceRepository handles database operations for academic records
type AcademicPerformanceRepository struct {
	db *pgxpool.Pool
}

// NewAcademicPerformanceRepository creates a new AcademicPerformanceRepository
func NewAcademicPerformanceRepository(db *pgxpool.Pool) *AcademicPerformanceRepository {
	return &AcademicPerformanceRepository{db: db}
}

// Create inserts an academic performance record
func (r *AcademicPerformanceRepository) Create(ctx context.Context, perf *models.AcademicPerformance) error {
	query := `
		INSERT INTO academic_performance
			(student_id, gpa, credits_completed, programming_concepts_percentage,
			 algorithms_concepts_percentage, software_engineering_percentage,
			 computer_network_percentage, electronic_subjects_percentage,
			 computer_architecture_percentage, mathematics_percentage,
			 communication_skills_percentage, operating_systems_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		perf.StudentID,
		perf.GPA,
		perf.CreditsCompleted,
		perf.ProgrammingConceptsPercentage,
		perf.AlgorithmsConceptsPercentage,
		perf.SoftwareEngineeringPercentage,
		perf.ComputerNetworkPercentage,
		perf.ElectronicSubjectsPercentage,
		perf.ComputerArchitecturePercentage,
		perf.MathematicsPercentage,
		perf.CommunicationSkillsPercentage,
		perf.OperatingSystemsPercentage,
	)
	if err != nil {
		logger.Error().Err(err).Str("studentID", perf.StudentID).Msg("Error executing create academic performance query")
		return fmt.Errorf("error creating academic performance: %w", err)
	}

	return nil
}

// GetByStudentID retrieves the academic record for a student
func (r *AcademicPerformanceRepository) GetByStudentID(ctx context.Context, studentID string) (*models.AcademicPerformance, error) {
	query := `
		SELECT student_id, gpa, credits_completed, programming_concepts_percentage,
		       algorithms_concepts_percentage, software_engineering_percentage,
		       computer_network_percentage, electronic_subjects_percentage,
		       computer_architecture_percentage, mathematics_percentage,
		       communication_skills_percentage, operating_systems_percentage
		FROM academic_performance
		WHERE student_id = $1
		LIMIT 1
	`

	perf := &models.AcademicPerformance{}
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&perf.StudentID,
		&perf.GPA,
		&perf.CreditsCompleted,
		&perf.ProgrammingConceptsPercentage,
		&perf.AlgorithmsConceptsPercentage,
		&perf.SoftwareEngineeringPercentage,
		&perf.ComputerNetworkPercentage,
		&perf.ElectronicSubjectsPercentage,
		&perf.ComputerArchitecturePercentage,
		&perf.MathematicsPercentage,
		&perf.CommunicationSkillsPercentage,
		&perf.OperatingSystemsPercentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("academic performance not found")
		}
		return nil, fmt.Errorf("error getting academic performance: %w", err)
	}

	return perf, nil
}
