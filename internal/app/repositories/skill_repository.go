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

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new skill row
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (skill_id, skill_name, proficiency_level, certifications)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, skill.ID, skill.Name, skill.ProficiencyLevel, skill.Certifications)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("skill with this identifier already exists")
		}
		logger.Error().Err(err).Str("skillID", skill.ID).Msg("Error executing create skill query")
		return fmt.Errorf("error creating skill: %w", err)
	}

	return nil
}

// GetAll retrieves all skills in the store's default order
func (r *SkillRepository) GetAll(ctx context.Context) ([]*models.Skill, error) {
	query := `
		SELECT skill_id, skill_name, proficiency_level, certifications
		FROM skills
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying skills: %w", err)
	}
	defer rows.Close()

	skills := []*models.Skill{}
	for rows.Next() {
		skill := &models.Skill{}
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.ProficiencyLevel, &skill.Certifications); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	return skills, nil
}
