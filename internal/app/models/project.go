package models

// Project represents a student project entry. Append-only.
type Project struct {
	ID     string `json:"project_id" db:"project_id"`
	Name   string `json:"project_name" db:"project_name"`
	Domain string `json:"domain_name" db:"domain_name"`
}
