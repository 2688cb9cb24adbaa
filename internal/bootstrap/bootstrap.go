package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deniz/credbridge/internal/app/controllers"
	appMigrations "github.com/deniz/credbridge/internal/app/migrations"
	appRepos "github.com/deniz/credbridge/internal/app/repositories"
	appRoutes "github.com/deniz/credbridge/internal/app/routes"
	appServices "github.com/deniz/credbridge/internal/app/services"
	"github.com/deniz/credbridge/internal/config"
	"github.com/deniz/credbridge/internal/db"
	appMiddleware "github.com/deniz/credbridge/internal/middleware"
	pkgAuth "github.com/deniz/credbridge/internal/pkg/auth"
	"github.com/deniz/credbridge/internal/pkg/helpers"
	"github.com/deniz/credbridge/internal/pkg/logger"
	"github.com/deniz/credbridge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UniversityService    appServices.UniversityService
	CourseService        appServices.CourseService
	TopicService         appServices.TopicService
	RuleService          appServices.RuleService
	EvaluationService    appServices.EvaluationService
	AuthController       *appControllers.AuthController
	UniversityController *appControllers.UniversityController
	CourseController     *appControllers.CourseController
	TopicController      *appControllers.TopicController
	RuleController       *appControllers.RuleController
	EvaluationController *appControllers.EvaluationController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort, a partially seeded catalog is still usable
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.UniversityRepository)
	deps.TopicService = appServices.NewTopicService(deps.Repos.TopicRepository, deps.Repos.CourseRepository)
	deps.RuleService = appServices.NewRuleService(deps.Repos.RuleRepository, deps.Repos.UniversityRepository)
	deps.EvaluationService = appServices.NewEvaluationService(
		deps.Repos.CourseRepository,
		deps.Repos.TopicRepository,
		deps.Repos.RuleRepository,
		deps.Repos.EvaluationRepository,
		appServices.EvaluationOptions{EmptySyllabusFullMatch: cfg.Evaluation.EmptySyllabusFullMatch},
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.TopicController = appControllers.NewTopicController(deps.TopicService)
	deps.RuleController = appControllers.NewRuleController(deps.RuleService)
	deps.EvaluationController = appControllers.NewEvaluationController(deps.EvaluationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UniversityController,
		deps.CourseController,
		deps.TopicController,
		deps.RuleController,
		deps.EvaluationController,
		deps.AuthMiddleware,
	)

	return router
}
