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

// RuleController handles transfer rule operations
type RuleController struct {
	ruleService services.RuleService
}

// NewRuleController creates a new RuleController
func NewRuleController(ruleService services.RuleService) *RuleController {
	return &RuleController{
		ruleService: ruleService,
	}
}

// CreateRule handles transfer rule creation
// @Summary Create a new transfer rule
// @Description Creates a directed transfer rule between two universities
// @Tags transfer-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRuleRequest true "Rule information"
// @Success 201 {object} dto.APIResponse{data=models.TransferRule} "Rule created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfer-rules [post]
func (c *RuleController) CreateRule(ctx *gin.Context) {
	var req dto.CreateRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rule := &models.TransferRule{
		SourceUniversityID:       req.SourceUniversityID,
		TargetUniversityID:       req.TargetUniversityID,
		MinimumOverlapPercentage: req.MinimumOverlapPercentage,
		CreditHourTolerance:      req.CreditHourTolerance,
		Active:                   true,
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}

	id, err := c.ruleService.CreateRule(ctx, rule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rule.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      rule,
		Timestamp: time.Now(),
	})
}

// GetRuleByID retrieves a transfer rule by ID
// @Summary Get transfer rule details
// @Description Retrieves a transfer rule by its ID
// @Tags transfer-rules
// @Accept json
// @Produce json
// @Param id path int true "Rule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.TransferRule} "Rule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid rule ID format"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfer-rules/{id} [get]
func (c *RuleController) GetRuleByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	rule, err := c.ruleService.GetRuleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rule,
		Timestamp: time.Now(),
	})
}

// GetAllRules retrieves all transfer rules
// @Summary Get all transfer rules
// @Description Retrieves a list of all transfer rules
// @Tags transfer-rules
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TransferRule} "Rules retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfer-rules [get]
func (c *RuleController) GetAllRules(ctx *gin.Context) {
	rules, err := c.ruleService.GetAllRules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rules,
		Timestamp: time.Now(),
	})
}

// DeleteRule deletes a transfer rule
// @Summary Delete a transfer rule
// @Description Deletes a transfer rule by its ID
// @Tags transfer-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Rule deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid rule ID"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transfer-rules/{id} [delete]
func (c *RuleController) DeleteRule(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.ruleService.DeleteRule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
