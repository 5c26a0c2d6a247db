package repositories

import (
	"testing"

	"github.com/roshr/careertrack/internal/app/services"
)

// Compile-time checks that the concrete repositories satisfy the store
// interfaces the services consume.
var (
	_ services.CompanyStore             = (*CompanyRepository)(nil)
	_ services.StudentStore             = (*StudentRepository)(nil)
	_ services.AcademicPerformanceStore = (*AcademicPerformanceRepository)(nil)
	_ services.ProjectStore             = (*ProjectRepository)(nil)
	_ services.SkillStore               = (*SkillRepository)(nil)
	_ services.JobListingStore          = (*JobListingRepository)(nil)
)

func TestNewRepositoriesWiresEveryRepository(t *testing.T) {
	repos := NewRepositories(nil)

	if repos.CompanyRepository == nil {
		t.Error("CompanyRepository not initialized")
	}
	if repos.StudentRepository == nil {
		t.Error("StudentRepository not initialized")
	}
	if repos.AcademicPerformanceRepository == nil {
		t.Error("AcademicPerformanceRepository not initialized")
	}
	if repos.ProjectRepository == nil {
		t.Error("ProjectRepository not initialized")
	}
	if repos.SkillRepository == nil {
		t.Error("SkillRepository not initialized")
	}
	if repos.JobListingRepository == nil {
		t.Error("JobListingRepository not initialized")
	}
}
