package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roshr/careertrack/internal/app/models"
	"github.com/roshr/careertrack/internal/app/models/dto"
)

// SkillStore defines the persistence operations the skill service needs.
type SkillStore interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetAll(ctx context.Context) ([]*models.Skill, error)
}

// SkillService defines methods for managing skill entries
type SkillService interface {
	AddSkill(ctx context.Context, req *dto.CreateSkillRequest) error
	GetAllSkills(ctx context.Context) ([]*models.Skill, error)
}

type skillServiceImpl struct {
	store  SkillStore
	logger zerolog.Logger
}

// NewSkillService creates a new SkillService
func NewSkillService(store SkillStore, logger zerolog.Logger) SkillService {
	return &skillServiceImpl{store: store, logger: logger}
}

// AddSkill inserts a new skill entry
func (s *skillServiceImpl) AddSkill(ctx context.Context, req *dto.CreateSkillRequest) error {
	skill := &models.Skill{
		ID:               req.SkillID,
		Name:             req.SkillName,
		ProficiencyLevel: req.ProficiencyLevel,
		Certifications:   req.Certifications,
	}

	if err := s.store.Create(ctx, skill); err != nil {
		return err
	}

	s.logger.Info().Str("skillID", skill.ID).Msg("Skill added")
	return nil
}

// GetAllSkills retrieves all skill entries
func (s *skillServiceImpl) GetAllSkills(ctx context.Context) ([]*models.Skill, error) {
	return s.store.GetAll(ctx)
}
