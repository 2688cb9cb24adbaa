package models

// TransferRule defines a directed transfer policy between two universities.
// A rule from A to B does not apply to transfers from B to A.
type TransferRule struct {
	ID                       int64   `json:"id" db:"id"`
	SourceUniversityID       int64   `json:"sourceUniversityId" db:"source_university_id"`
	TargetUniversityID       int64   `json:"targetUniversityId" db:"target_university_id"`
	MinimumOverlapPercentage float64 `json:"minimumOverlapPercentage" db:"minimum_overlap_percentage"`
	// CreditHourTolerance is the maximum allowed absolute difference between
	// source and target credit hours. Nil means zero tolerance.
	CreditHourTolerance *int `json:"creditHourTolerance,omitempty" db:"credit_hour_tolerance"`
	Active              bool `json:"active" db:"active"`
}

// Tolerance returns the effective credit-hour tolerance, treating nil as 0.
func (r *TransferRule) Tolerance() int {
	if r.CreditHourTolerance == nil {
		return 0
	}
	return *r.CreditHourTolerance
}
