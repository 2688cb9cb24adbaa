package dto

// CreateRuleRequest is the payload for transfer rule creation
type CreateRuleRequest struct {
	SourceUniversityID       int64   `json:"sourceUniversityId" binding:"required,gt=0" example:"1"`
	TargetUniversityID       int64   `json:"targetUniversityId" binding:"required,gt=0" example:"2"`
	MinimumOverlapPercentage float64 `json:"minimumOverlapPercentage" binding:"gte=0,lte=100" example:"50"`
	CreditHourTolerance      *int    `json:"creditHourTolerance" binding:"omitempty,gte=0" example:"1"`
	Active                   *bool   `json:"active" binding:"omitempty" example:"true"`
}
