package models

// Student defines the student model based on the 'students' table.
// The password is stored exactly as received; see DESIGN.md for the rationale.
type Student struct {
	ID       string `json:"student_id" db:"student_id"`
	Name     string `json:"student_name" db:"student_name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
	Gender   string `json:"gender" db:"gender"`
}
