package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
)

// StudentStore defines the persistence operations the student service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// StudentService defines methods for managing student records
type StudentService interface {
	RegisterStudent(ctx context.Context, req *dto.CreateStudentRequest) error
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

type studentServiceImpl struct {
	store  StudentStore
	logger zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(store StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{store: store, logger: logger}
}

// RegisterStudent inserts a new student record. The password is stored as
// received; there is no credential verification in this application.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, req *dto.CreateStudentRequest) error {
	student := &models.Student{
		ID:       req.StudentID,
		Name:     req.StudentName,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
	}

	if err := s.store.Create(ctx, student); err != nil {
		return err
	}

	s.logger.Info().Str("studentID", student.ID).Msg("Student registered")
	return nil
}

// GetAllStudents retrieves all student records
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.store.GetAll(ctx)
}
