package models

import "time"

// TransferEvaluationResult is the persisted verdict of a single transfer
// evaluation. Results are insert-only; re-evaluating the same course pair
// produces a new row.
type TransferEvaluationResult struct {
	ID                int64     `json:"id" db:"id"`
	SourceCourseID    int64     `json:"sourceCourseId" db:"source_course_id"`
	TargetCourseID    int64     `json:"targetCourseId" db:"target_course_id"`
	OverlapPercentage float64   `json:"overlapPercentage" db:"overlap_percentage"`
	Eligible          bool      `json:"eligible" db:"eligible"`
	Notes             string    `json:"notes" db:"notes"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}
