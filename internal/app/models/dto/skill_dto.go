package dto

// CreateSkillRequest carries the JSON payload for adding a skill.
type CreateSkillRequest struct {
	SkillID          string `json:"skill_id" binding:"required"`
	SkillName        string `json:"skill_name" binding:"required"`
	ProficiencyLevel string `json:"proficiency_level"`
	Certifications   string `json:"certifications"`
}
