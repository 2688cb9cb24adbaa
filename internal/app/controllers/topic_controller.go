package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/models/dto"
	"github.com/deniz/credbridge/internal/app/services"
	"github.com/deniz/credbridge/internal/middleware"
)

// TopicController handles course content topic operations
type TopicController struct {
	topicService services.TopicService
}

// NewTopicController creates a new TopicController
func NewTopicController(topicService services.TopicService) *TopicController {
	return &TopicController{
		topicService: topicService,
	}
}

// CreateTopic handles content topic creation
// @Summary Create a new content topic
// @Description Adds a syllabus topic with a weight percentage to an existing course
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTopicRequest true "Topic information"
// @Success 201 {object} dto.APIResponse{data=models.CourseContentTopic} "Topic created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics [post]
func (c *TopicController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid topic data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	topic := &models.CourseContentTopic{
		CourseID:         req.CourseID,
		TopicName:        req.TopicName,
		WeightPercentage: req.WeightPercentage,
	}

	id, err := c.topicService.CreateTopic(ctx, topic)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	topic.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      topic,
		Timestamp: time.Now(),
	})
}

// GetTopicByID retrieves a content topic by ID
// @Summary Get topic details
// @Description Retrieves a content topic by its ID
// @Tags topics
// @Accept json
// @Produce json
// @Param id path int true "Topic ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CourseContentTopic} "Topic retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics/{id} [get]
func (c *TopicController) GetTopicByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	topic, err := c.topicService.GetTopicByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      topic,
		Timestamp: time.Now(),
	})
}

// GetTopicsForCourse lists all topics of a course
// @Summary List topics for a course
// @Description Retrieves the content topics of a course, in insertion order
// @Tags topics
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CourseContentTopic} "Topics retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics/course/{courseId} [get]
func (c *TopicController) GetTopicsForCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseId")
	if err != nil {
		return
	}

	topics, err := c.topicService.GetTopicsForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      topics,
		Timestamp: time.Now(),
	})
}

// DeleteTopic deletes a content topic
// @Summary Delete a content topic
// @Description Deletes a content topic by its ID
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Topic deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics/{id} [delete]
func (c *TopicController) DeleteTopic(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.topicService.DeleteTopic(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
