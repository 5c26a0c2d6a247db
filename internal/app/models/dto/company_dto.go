package dto

// CreateCompanyRequest carries the multipart form fields for company creation.
// The optional image arrives as the separate "companyImage" form file.
type CreateCompanyRequest struct {
	CompanyID          string `form:"companyId" binding:"required"`
	CompanyName        string `form:"companyName" binding:"required"`
	Industry           string `form:"industry" binding:"required"`
	CompanyDescription string `form:"companyDescription"`
}

// UpdateCompanyRequest carries the multipart form fields for company updates.
// The company identifier comes from the URL path.
type UpdateCompanyRequest struct {
	CompanyName        string `form:"companyName" binding:"required"`
	Industry           string `form:"industry" binding:"required"`
	CompanyDescription string `form:"companyDescription"`
}

// CompanyMutationResponse is returned by create and update operations.
// ImagePath is nil when the company has no stored image.
type CompanyMutationResponse struct {
	Message   string  `json:"message"`
	ImagePath *string `json:"imagePath"`
}

// CompanyResponse projects a company row for read endpoints.
type CompanyResponse struct {
	CompanyID          string  `json:"companyId"`
	CompanyName        string  `json:"companyName"`
	Industry           string  `json:"industry"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
	ImagePath          *string `json:"imagePath,omitempty"`
}
