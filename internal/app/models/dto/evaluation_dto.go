package dto

import "time"

// EvaluationResponse is the serialized form of a transfer evaluation result
type EvaluationResponse struct {
	ID                int64     `json:"id" example:"42"`
	SourceCourseID    int64     `json:"sourceCourseId" example:"1"`
	TargetCourseID    int64     `json:"targetCourseId" example:"2"`
	OverlapPercentage float64   `json:"overlapPercentage" example:"80"`
	Eligible          bool      `json:"eligible" example:"true"`
	Notes             string    `json:"notes" example:"transfer approved"`
	CreatedAt         time.Time `json:"createdAt"`
}
