package dto

// CreateStudentRequest carries the JSON payload for student registration.
type CreateStudentRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Gender      string `json:"gender"`
}
