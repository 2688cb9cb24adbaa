package dto

// CreateTopicRequest is the payload for content topic creation
type CreateTopicRequest struct {
	CourseID         int64   `json:"courseId" binding:"required,gt=0" example:"1"`
	TopicName        string  `json:"topicName" binding:"required" example:"Graph Algorithms"`
	WeightPercentage float64 `json:"weightPercentage" binding:"gte=0,lte=100" example:"25.5"`
}
