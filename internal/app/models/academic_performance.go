package models

// AcademicPerformance holds a student's academic record. It is keyed by the
// student identifier (logically one-to-one with Student, not enforced by the
// store) and is append-only.
type AcademicPerformance struct {
	StudentID                      string  `json:"student_id" db:"student_id"`
	GPA                            float64 `json:"gpa" db:"gpa"`
	CreditsCompleted               int     `json:"credits_completed" db:"credits_completed"`
	ProgrammingConceptsPercentage  float64 `json:"programming_concepts_percentage" db:"programming_concepts_percentage"`
	AlgorithmsConceptsPercentage   float64 `json:"algorithms_concepts_percentage" db:"algorithms_concepts_percentage"`
	SoftwareEngineeringPercentage  float64 `json:"software_engineering_percentage" db:"software_engineering_percentage"`
	ComputerNetworkPercentage      float64 `json:"computer_network_percentage" db:"computer_network_percentage"`
	ElectronicSubjectsPercentage   float64 `json:"electronic_subjects_percentage" db:"electronic_subjects_percentage"`
	ComputerArchitecturePercentage float64 `json:"computer_architecture_percentage" db:"computer_architecture_percentage"`
	MathematicsPercentage          float64 `json:"mathematics_percentage" db:"mathematics_percentage"`
	CommunicationSkillsPercentage  float64 `json:"communication_skills_percentage" db:"communication_skills_percentage"`
	OperatingSystemsPercentage     float64 `json:"operating_systems_percentage" db:"operating_systems_percentage"`
}
