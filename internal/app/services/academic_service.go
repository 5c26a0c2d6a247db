package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
)

// AcademicPerformanceStore defines the persistence operations the academic
// performance service needs.
type AcademicPerformanceStore interface {
	Create(ctx context.Context, perf *models.AcademicPerformance) error
	GetByStudentID(ctx context.Context, studentID string) (*models.AcademicPerformance, error)
}

// AcademicPerformanceService defines methods for managing academic records
type AcademicPerformanceService interface {
	RecordPerformance(ctx context.Context, req *dto.CreateAcademicPerformanceRequest) error
	GetPerformanceByStudentID(ctx context.Context, studentID string) (*models.AcademicPerformance, error)
}

type academicPerformanceServiceImpl struct {
	store  AcademicPerformanceStore
	logger zerolog.Logger
}

// NewAcademicPerformanceService creates a new AcademicPerformanceService
func NewAcademicPerformanceService(store AcademicPerformanceStore, logger zerolog.Logger) AcademicPerformanceService {
	return &academicPerformanceServiceImpl{store: store, logger: logger}
}

// RecordPerformance inserts an academic performance record for a student
func (s *academicPerformanceServiceImpl) RecordPerformance(ctx context.Context, req *dto.CreateAcademicPerformanceRequest) error {
	perf := &models.AcademicPerformance{
		StudentID:                      req.StudentID,
		GPA:                            req.GPA,
		CreditsCompleted:               req.CreditsCompleted,
		ProgrammingConceptsPercentage:  req.ProgrammingConceptsPercentage,
		AlgorithmsConceptsPercentage:   req.AlgorithmsConceptsPercentage,
		SoftwareEngineeringPercentage:  req.SoftwareEngineeringPercentage,
		ComputerNetworkPercentage:      req.ComputerNetworkPercentage,
		ElectronicSubjectsPercentage:   req.ElectronicSubjectsPercentage,
		ComputerArchitecturePercentage: req.ComputerArchitecturePercentage,
		MathematicsPercentage:          req.MathematicsPercentage,
		CommunicationSkillsPercentage:  req.CommunicationSkillsPercentage,
		OperatingSystemsPercentage:     req.OperatingSystemsPercentage,
	}

	if err := s.store.Create(ctx, perf); err != nil {
		return err
	}

	s.logger.Info().Str("studentID", perf.StudentID).Msg("Academic performance recorded")
	return nil
}

// GetPerformanceByStudentID retrieves a student's academic record
func (s *academicPerformanceServiceImpl) GetPerformanceByStudentID(ctx context.Context, studentID string) (*models.AcademicPerformance, error) {
	return s.store.GetByStudentID(ctx, studentID)
}
