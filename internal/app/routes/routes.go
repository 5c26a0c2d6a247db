package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	companyController *controllers.CompanyController,
	studentController *controllers.StudentController,
	academicController *controllers.AcademicPerformanceController,
	projectController *controllers.ProjectController,
	skillController *controllers.SkillController,
	jobController *controllers.JobListingController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Company routes (CRUD with coupled image lifecycle)
	companies := v1.Group("/companies")
	{
		companies.POST("", companyController.CreateCompany)
		companies.GET("", companyController.GetAllCompanies)
		companies.GET("/:id", companyController.GetCompanyByID)
		companies.PUT("/:id", companyController.UpdateCompany)
		companies.DELETE("/:id", companyController.DeleteCompany)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.RegisterStudent)
		students.GET("", studentController.GetAllStudents)
	}

	// Academic performance routes
	academic := v1.Group("/academic-performance")
	{
		academic.POST("", academicController.RecordPerformance)
		academic.GET("/:studentId", academicController.GetPerformanceByStudentID)
	}

	// Project routes
	projects := v1.Group("/projects")
	{
		projects.POST("", projectController.AddProject)
		projects.GET("", projectController.GetAllProjects)
	}

	// Skill routes
	skills := v1.Group("/skills")
	{
		skills.POST("", skillController.AddSkill)
		skills.GET("", skillController.GetAllSkills)
	}

	// Job listing routes
	jobs := v1.Group("/jobs")
	{
		jobs.POST("", jobController.PublishListing)
		jobs.GET("", jobController.GetAllListings)
		jobs.GET("/:id", jobController.GetListingByID)
	}
}
