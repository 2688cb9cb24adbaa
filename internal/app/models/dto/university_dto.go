package dto

// CreateUniversityRequest is the payload for university creation
type CreateUniversityRequest struct {
	Name    string `json:"name" binding:"required" example:"Middle East Technical University"`
	Country string `json:"country" binding:"omitempty" example:"Turkey"`
	Active  *bool  `json:"active" binding:"omitempty" example:"true"`
}
