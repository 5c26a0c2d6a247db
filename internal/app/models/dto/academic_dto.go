package dto

// CreateAcademicPerformanceRequest carries the JSON payload for recording a
// student's academic performance.
type CreateAcademicPerformanceRequest struct {
	StudentID                      string  `json:"student_id" binding:"required"`
	GPA                            float64 `json:"gpa"`
	CreditsCompleted               int     `json:"credits_completed"`
	ProgrammingConceptsPercentage  float64 `json:"programming_concepts_percentage"`
	AlgorithmsConceptsPercentage   float64 `json:"algorithms_concepts_percentage"`
	SoftwareEngineeringPercentage  float64 `json:"software_engineering_percentage"`
	ComputerNetworkPercentage      float64 `json:"computer_network_percentage"`
	ElectronicSubjectsPercentage   float64 `json:"electronic_subjects_percentage"`
	ComputerArchitecturePercentage float64 `json:"computer_architecture_percentage"`
	MathematicsPercentage          float64 `json:"mathematics_percentage"`
	CommunicationSkillsPercentage  float64 `json:"communication_skills_percentage"`
	OperatingSystemsPercentage     float64 `json:"operating_systems_percentage"`
}
