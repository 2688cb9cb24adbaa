package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/models/dto"
	"github.com/deniz/credbridge/internal/app/services"
	"github.com/deniz/credbridge/internal/middleware"
)

// EvaluationController handles transfer evaluation operations
type EvaluationController struct {
	evaluationService services.EvaluationService
}

// NewEvaluationController creates a new EvaluationController
func NewEvaluationController(evaluationService services.EvaluationService) *EvaluationController {
	return &EvaluationController{
		evaluationService: evaluationService,
	}
}

// EvaluateTransfer runs a transfer evaluation between two courses
// @Summary Evaluate a course transfer
// @Description Computes syllabus overlap between the source and target course, applies active transfer rules and persists the verdict
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sourceCourseId path int true "Source course ID" Format(int64) minimum(1)
// @Param targetCourseId path int true "Target course ID" Format(int64) minimum(1)
// @Success 201 {object} dto.APIResponse{data=dto.EvaluationResponse} "Evaluation stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid course IDs"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 422 {object} dto.ErrorResponse "Course is not active"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations/evaluate/{sourceCourseId}/{targetCourseId} [post]
func (c *EvaluationController) EvaluateTransfer(ctx *gin.Context) {
	sourceID, err := parseIDParam(ctx, "sourceCourseId")
	if err != nil {
		return
	}
	targetID, err := parseIDParam(ctx, "targetCourseId")
	if err != nil {
		return
	}

	result, err := c.evaluationService.EvaluateTransfer(ctx, sourceID, targetID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toEvaluationResponse(result),
		Timestamp: time.Now(),
	})
}

// GetEvaluationByID retrieves a stored evaluation result
// @Summary Get evaluation details
// @Description Retrieves a past transfer evaluation result by its ID
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evaluation ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.EvaluationResponse} "Evaluation retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid evaluation ID"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations/{id} [get]
func (c *EvaluationController) GetEvaluationByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	result, err := c.evaluationService.GetEvaluationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toEvaluationResponse(result),
		Timestamp: time.Now(),
	})
}

// GetEvaluationsForCourse lists evaluations where the course was the source
// @Summary List evaluations for a source course
// @Description Retrieves all past evaluations where the given course was the transfer source; an empty list when none exist
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Source course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.EvaluationResponse} "Evaluations retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations/course/{courseId} [get]
func (c *EvaluationController) GetEvaluationsForCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "courseId")
	if err != nil {
		return
	}

	results, err := c.evaluationService.GetEvaluationsForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.EvaluationResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toEvaluationResponse(result))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

func toEvaluationResponse(result *models.TransferEvaluationResult) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		ID:                result.ID,
		SourceCourseID:    result.SourceCourseID,
		TargetCourseID:    result.TargetCourseID,
		OverlapPercentage: result.OverlapPercentage,
		Eligible:          result.Eligible,
		Notes:             result.Notes,
		CreatedAt:         result.CreatedAt,
	}
}

// parseIDParam parses a positive int64 path parameter, writing a 400 response
// and returning an error when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithField(name).WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, err
	}
	return id, nil
}
