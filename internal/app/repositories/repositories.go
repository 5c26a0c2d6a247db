package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CompanyRepository             *CompanyRepository
	StudentRepository             *StudentRepository
	AcademicPerformanceRepository *AcademicPerformanceRepository
	ProjectRepository             *ProjectRepository
	SkillRepository               *SkillRepository
	JobListingRepository          *JobListingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CompanyRepository:             NewCompanyRepository(db),
		StudentRepository:             NewStudentRepository(db),
		AcademicPerformanceRepository: NewAcademicPerformanceRepository(db),
		ProjectRepository:             NewProjectRepository(db),
		SkillRepository:               NewSkillRepository(db),
		JobListingRepository:          NewJobListingRepository(db),
	}
}
