package models

// Company represents an employer profile tracked by the application.
// ImagePath, when non-nil, references an image in the asset store; the image
// lifecycle is coupled to this row and managed by the company service.
type Company struct {
	ID          string  `json:"companyId" db:"company_id"`
	Name        string  `json:"companyName" db:"company_name"`
	Industry    string  `json:"industry" db:"industry"`
	Description *string `json:"companyDescription,omitempty" db:"company_description"`
	ImagePath   *string `json:"imagePath,omitempty" db:"image_path"`
}
