package models

// CourseContentTopic represents a single syllabus item of a course together
// with the share of the course content it covers. Weights are stored as
// percentages but per-course sums are not forced to 100 (partial syllabi
// are tolerated by the evaluation engine).
type CourseContentTopic struct {
	ID               int64   `json:"id" db:"id"`
	CourseID         int64   `json:"courseId" db:"course_id"`
	TopicName        string  `json:"topicName" db:"topic_name"`
	WeightPercentage float64 `json:"weightPercentage" db:"weight_percentage"`
}
