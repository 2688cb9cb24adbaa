package models

// Course represents a course offered by a university.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	UniversityID int64  `json:"universityId" db:"university_id"`
	CourseName   string `json:"courseName" db:"course_name"`
	CreditHours  int    `json:"creditHours" db:"credit_hours"`
	Active       bool   `json:"active" db:"active"`

	// Relations (populated when needed)
	University *University `json:"university,omitempty"`
}
