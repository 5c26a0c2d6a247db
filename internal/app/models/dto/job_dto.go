package dto

// CreateJobListingRequest carries the JSON payload for publishing a job listing.
type CreateJobListingRequest struct {
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description"`
	ExpectedSalary string `json:"expected_salary"`
	CompanyID      string `json:"company_id" binding:"required"`
}
