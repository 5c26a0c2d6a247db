package models

// Skill represents a tracked skill with proficiency and certifications.
type Skill struct {
	ID               string `json:"skill_id" db:"skill_id"`
	Name             string `json:"skill_name" db:"skill_name"`
	ProficiencyLevel string `json:"proficiency_level" db:"proficiency_level"`
	Certifications   string `json:"certifications" db:"certifications"`
}
