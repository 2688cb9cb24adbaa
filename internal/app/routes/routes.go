package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/credbridge/internal/app/controllers"
	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/models/dto"
	"github.com/deniz/credbridge/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	courseController *controllers.CourseController,
	topicController *controllers.TopicController,
	ruleController *controllers.RuleController,
	evaluationController *controllers.EvaluationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public catalog routes ---
	// University routes (public access)
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.GetAllUniversities)
		universities.GET("/:id", universityController.GetUniversityByID)
	}

	// Course routes (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// Syllabus topic routes (public access)
	topics := v1.Group("/topics")
	{
		topics.GET("/:id", topicController.GetTopicByID)
		topics.GET("/course/:courseId", topicController.GetTopicsForCourse)
	}

	// Transfer rule routes (public access)
	rules := v1.Group("/transfer-rules")
	{
		rules.GET("", ruleController.GetAllRules)
		rules.GET("/:id", ruleController.GetRuleByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Evaluations are available to any authenticated user
		evaluations := authenticated.Group("/evaluations")
		{
			evaluations.POST("/evaluate/:sourceCourseId/:targetCourseId", evaluationController.EvaluateTransfer)
			evaluations.GET("/:id", evaluationController.GetEvaluationByID)
			evaluations.GET("/course/:courseId", evaluationController.GetEvaluationsForCourse)
		}

		// Catalog mutations are restricted to advisors
		advisorProtected := authenticated.Group("")
		advisorProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdvisor)))
		{
			advisorProtected.POST("/universities", universityController.CreateUniversity)
			advisorProtected.DELETE("/universities/:id", universityController.DeleteUniversity)

			advisorProtected.POST("/courses", courseController.CreateCourse)
			advisorProtected.DELETE("/courses/:id", courseController.DeleteCourse)

			advisorProtected.POST("/topics", topicController.CreateTopic)
			advisorProtected.DELETE("/topics/:id", topicController.DeleteTopic)

			advisorProtected.POST("/transfer-rules", ruleController.CreateRule)
			advisorProtected.DELETE("/transfer-rules/:id", ruleController.DeleteRule)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
