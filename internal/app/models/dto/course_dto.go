package dto

// CreateCourseRequest is the payload for course creation
type CreateCourseRequest struct {
	UniversityID int64  `json:"universityId" binding:"required,gt=0" example:"1"`
	CourseName   string `json:"courseName" binding:"required" example:"Data Structures"`
	CreditHours  int    `json:"creditHours" binding:"required,gt=0" example:"3"`
	Active       *bool  `json:"active" binding:"omitempty" example:"true"`
}
