package models

// JobListing represents an open position published by a company.
// CompanyID is a logical reference to Company; it is not enforced as a
// foreign key by the store.
type JobListing struct {
	ID             int64  `json:"job_id" db:"job_id"`
	Title          string `json:"job_title" db:"job_title"`
	Description    string `json:"job_description" db:"job_description"`
	ExpectedSalary string `json:"expected_salary" db:"expected_salary"`
	CompanyID      string `json:"company_id" db:"company_id"`
}
