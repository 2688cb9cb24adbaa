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

// UniversityController handles university-related operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// CreateUniversity handles university creation
// @Summary Create a new university
// @Description Creates a new university with the provided information
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "University already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university := &models.University{
		Name:    req.Name,
		Country: req.Country,
		Active:  true,
	}
	if req.Active != nil {
		university.Active = *req.Active
	}

	id, err := c.universityService.CreateUniversity(ctx, university)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	university.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// GetUniversityByID retrieves a university by ID
// @Summary Get university details
// @Description Retrieves detailed information about a specific university by its ID
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.University} "University retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	university, err := c.universityService.GetUniversityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// GetAllUniversities retrieves all universities
// @Summary Get all universities
// @Description Retrieves a list of all universities
// @Tags universities
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	universities, err := c.universityService.GetAllUniversities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      universities,
		Timestamp: time.Now(),
	})
}

// DeleteUniversity deletes a university
// @Summary Delete a university
// @Description Deletes a university without associated courses
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "University deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 409 {object} dto.ErrorResponse "University has associated courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.universityService.DeleteUniversity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
