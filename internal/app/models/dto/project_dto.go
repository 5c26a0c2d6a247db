package dto

// CreateProjectRequest carries the JSON payload for adding a project.
type CreateProjectRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	ProjectName string `json:"project_name" binding:"required"`
	DomainName  string `json:"domain_name"`
}
